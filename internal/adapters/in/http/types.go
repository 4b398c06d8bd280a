package http

import (
	"time"

	"relais/internal/core/application/usecases/queries"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ClientRequest is the payload for creating or replacing a client account.
type ClientRequest struct {
	Nom        string `json:"nom"`
	Prenom     string `json:"prenom"`
	Email      string `json:"email"`
	Telephone  string `json:"telephone"`
	MotDePasse string `json:"motDePasse"`
	Adresse    string `json:"adresse"`
}

// ClientJSON is the client read model on the wire. The password never leaves
// the server.
type ClientJSON struct {
	ID              string    `json:"id"`
	Nom             string    `json:"nom"`
	Prenom          string    `json:"prenom"`
	Email           string    `json:"email"`
	Telephone       string    `json:"telephone,omitempty"`
	Adresse         string    `json:"adresse,omitempty"`
	DateInscription time.Time `json:"dateInscription"`
}

// ParcelRequest is the payload for registering a parcel. PointRelaisID may be
// empty when the sender has not yet chosen a drop-off point.
type ParcelRequest struct {
	ExpediteurID   string  `json:"expediteurId"`
	DestinataireID string  `json:"destinataireId"`
	PointRelaisID  string  `json:"pointRelaisId,omitempty"`
	Description    string  `json:"description"`
	Poids          float64 `json:"poids"`
	Dimensions     float64 `json:"dimensions"`
}

// ParcelJSON is the parcel read model on the wire.
type ParcelJSON struct {
	ID             string     `json:"id"`
	ExpediteurID   string     `json:"expediteurId"`
	DestinataireID string     `json:"destinataireId"`
	PointRelaisID  string     `json:"pointRelaisId,omitempty"`
	Description    string     `json:"description"`
	Poids          float64    `json:"poids"`
	Dimensions     float64    `json:"dimensions"`
	Statut         string     `json:"statut"`
	DateDepot      *time.Time `json:"dateDepot,omitempty"`
	DateRetrait    *time.Time `json:"dateRetrait,omitempty"`
	DateMiseAJour  time.Time  `json:"dateMiseAJour"`
	QRCodePath     string     `json:"qrCodePath,omitempty"`
}

// RelayPointRequest is the payload for creating or replacing a relay point.
// ProprietaireID is only read on creation.
type RelayPointRequest struct {
	ProprietaireID string  `json:"proprietaireId,omitempty"`
	Nom            string  `json:"nom"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Rue            string  `json:"rue"`
	Ville          string  `json:"ville"`
	CodePostal     string  `json:"codePostal"`
	CapaciteMax    int     `json:"capaciteMax"`
	Horaires       string  `json:"horaires"`
	Description    string  `json:"description,omitempty"`
}

// RelayPointJSON is the relay-point read model on the wire.
type RelayPointJSON struct {
	ID             string   `json:"id"`
	Nom            string   `json:"nom"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	Rue            string   `json:"rue"`
	Ville          string   `json:"ville"`
	CodePostal     string   `json:"codePostal"`
	ProprietaireID string   `json:"proprietaireId"`
	CapaciteMax    int      `json:"capaciteMax"`
	StockActuel    int      `json:"stockActuel"`
	Horaires       string   `json:"horaires"`
	Description    string   `json:"description,omitempty"`
	Note           *float64 `json:"note,omitempty"`
	DistanceKm     *float64 `json:"distanceKm,omitempty"`
	ColisIDs       []string `json:"colisIds,omitempty"`
}

// HoursRequest is the payload for changing relay-point opening hours.
type HoursRequest struct {
	Horaires string `json:"horaires"`
}

// RatingRequest is the payload for rating a relay point.
type RatingRequest struct {
	Note float64 `json:"note"`
}

// OwnerRequest is the payload for registering a relay-point owner.
type OwnerRequest struct {
	Nom   string `json:"nom"`
	Email string `json:"email"`
}

// OwnerJSON is the owner read model on the wire.
type OwnerJSON struct {
	ID             string   `json:"id"`
	Nom            string   `json:"nom"`
	Email          string   `json:"email"`
	PointsRelaisID []string `json:"pointsRelaisIds"`
}

func toClientJSON(resp queries.ClientResponse) ClientJSON {
	return ClientJSON{
		ID:              resp.ID.String(),
		Nom:             resp.Name,
		Prenom:          resp.Surname,
		Email:           resp.Email,
		Telephone:       resp.Phone,
		Adresse:         resp.Address,
		DateInscription: resp.RegisteredAt,
	}
}

func toParcelJSON(resp queries.ParcelResponse) ParcelJSON {
	out := ParcelJSON{
		ID:             resp.ID.String(),
		ExpediteurID:   resp.SenderID.String(),
		DestinataireID: resp.RecipientID.String(),
		Description:    resp.Description,
		Poids:          resp.Weight,
		Dimensions:     resp.Dimensions,
		Statut:         resp.Status,
		DateDepot:      resp.DepositedAt,
		DateRetrait:    resp.WithdrawnAt,
		DateMiseAJour:  resp.UpdatedAt,
		QRCodePath:     resp.QRCodePath,
	}
	if resp.RelayPointID != nil {
		out.PointRelaisID = resp.RelayPointID.String()
	}
	return out
}

func toRelayPointJSON(resp queries.RelayPointResponse) RelayPointJSON {
	return RelayPointJSON{
		ID:             resp.ID.String(),
		Nom:            resp.Name,
		Latitude:       resp.Latitude,
		Longitude:      resp.Longitude,
		Rue:            resp.Street,
		Ville:          resp.City,
		CodePostal:     resp.PostalCode,
		ProprietaireID: resp.OwnerID.String(),
		CapaciteMax:    resp.MaxCapacity,
		StockActuel:    resp.CurrentStock,
		Horaires:       resp.OpeningHours,
		Description:    resp.Description,
		Note:           resp.Rating,
	}
}

func toOwnerJSON(resp queries.OwnerResponse) OwnerJSON {
	relayIDs := make([]string, 0, len(resp.RelayPointIDs))
	for _, id := range resp.RelayPointIDs {
		relayIDs = append(relayIDs, id.String())
	}

	return OwnerJSON{
		ID:             resp.ID.String(),
		Nom:            resp.Name,
		Email:          resp.Email,
		PointsRelaisID: relayIDs,
	}
}
