package cmd

import (
	"log/slog"

	"relais/internal/adapters/out/notify"
	"relais/internal/adapters/out/postgres"
	"relais/internal/adapters/out/qr"
	"relais/internal/core/application/usecases/commands"
	"relais/internal/core/application/usecases/queries"
	"relais/internal/core/ports"
	"relais/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use-case handlers.
type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	notifier    ports.Notifier
	qrGenerator ports.QRGenerator
	logger      *slog.Logger

	reminderThresholdDays int
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier: notify.NewNotifier(notify.Config{
			SMTPHost:      config.SMTPHost,
			SMTPPort:      config.SMTPPort,
			FromEmail:     config.FromEmail,
			SMSGatewayURL: config.SMSGatewayURL,
			SMSSender:     config.SMSSender,
		}, logger),
		qrGenerator:           qr.NewFileQRGenerator(config.QRCodeDir),
		logger:                logger,
		reminderThresholdDays: config.ReminderThresholdDays,
	}
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	return commands.NewCreateClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateUpdateClientCommandHandler() commands.UpdateClientCommandHandler {
	return commands.NewUpdateClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateDeleteClientCommandHandler() commands.DeleteClientCommandHandler {
	return commands.NewDeleteClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.parcelRelayUoWFactory())
}

func (c *CompositionRoot) CreateChangeParcelStatusCommandHandler() commands.ChangeParcelStatusCommandHandler {
	return commands.NewChangeParcelStatusCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	return commands.NewDeleteParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateGenerateQRCommandHandler() commands.GenerateQRCommandHandler {
	return commands.NewGenerateQRCommandHandler(c.parcelUoWFactory(), c.qrGenerator)
}

func (c *CompositionRoot) CreateCreateRelayPointCommandHandler() commands.CreateRelayPointCommandHandler {
	return commands.NewCreateRelayPointCommandHandler(c.ownerRelayUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRelayPointCommandHandler() commands.UpdateRelayPointCommandHandler {
	return commands.NewUpdateRelayPointCommandHandler(c.relayPointUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRelayPointCommandHandler() commands.DeleteRelayPointCommandHandler {
	return commands.NewDeleteRelayPointCommandHandler(c.ownerRelayUoWFactory())
}

func (c *CompositionRoot) CreateChangeRelayPointHoursCommandHandler() commands.ChangeRelayPointHoursCommandHandler {
	return commands.NewChangeRelayPointHoursCommandHandler(c.uoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateChangeRelayPointRatingCommandHandler() commands.ChangeRelayPointRatingCommandHandler {
	return commands.NewChangeRelayPointRatingCommandHandler(c.relayPointUoWFactory())
}

func (c *CompositionRoot) CreateRecomputeRelayPointStockCommandHandler() commands.RecomputeRelayPointStockCommandHandler {
	return commands.NewRecomputeRelayPointStockCommandHandler(c.relayPointUoWFactory())
}

func (c *CompositionRoot) CreateReceiveParcelCommandHandler() commands.ReceiveParcelCommandHandler {
	return commands.NewReceiveParcelCommandHandler(c.uoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateWithdrawParcelCommandHandler() commands.WithdrawParcelCommandHandler {
	return commands.NewWithdrawParcelCommandHandler(c.uoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCreateOwnerCommandHandler() commands.CreateOwnerCommandHandler {
	return commands.NewCreateOwnerCommandHandler(c.ownerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOwnerCommandHandler() commands.UpdateOwnerCommandHandler {
	return commands.NewUpdateOwnerCommandHandler(c.ownerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOwnerCommandHandler() commands.DeleteOwnerCommandHandler {
	return commands.NewDeleteOwnerCommandHandler(c.ownerUoWFactory())
}

func (c *CompositionRoot) CreateRemindUnclaimedParcelsCommandHandler() commands.RemindUnclaimedParcelsCommandHandler {
	return commands.NewRemindUnclaimedParcelsCommandHandler(c.uoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateGetAllClientsQueryHandler() queries.GetAllClientsQueryHandler {
	return queries.NewGetAllClientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClientQueryHandler() queries.GetClientQueryHandler {
	return queries.NewGetClientQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelByQRQueryHandler() queries.GetParcelByQRQueryHandler {
	return queries.NewGetParcelByQRQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchParcelsQueryHandler() queries.SearchParcelsQueryHandler {
	return queries.NewSearchParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRelayPointQueryHandler() queries.GetRelayPointQueryHandler {
	return queries.NewGetRelayPointQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchRelayPointsQueryHandler() queries.SearchRelayPointsQueryHandler {
	return queries.NewSearchRelayPointsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNearbyRelayPointsQueryHandler() queries.GetNearbyRelayPointsQueryHandler {
	return queries.NewGetNearbyRelayPointsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOwnersQueryHandler() queries.GetAllOwnersQueryHandler {
	return queries.NewGetAllOwnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOwnerQueryHandler() queries.GetOwnerQueryHandler {
	return queries.NewGetOwnerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRemindUnclaimedParcelsCommandHandler(),
		c.reminderThresholdDays,
		c.logger,
	)
}

func (c *CompositionRoot) clientUoWFactory() commands.ClientUoWFactory {
	return FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) relayPointUoWFactory() commands.RelayPointUoWFactory {
	return FuncRelayPointUoWFactory(func() commands.RelayPointUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) ownerUoWFactory() commands.OwnerUoWFactory {
	return FuncOwnerUoWFactory(func() commands.OwnerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) parcelRelayUoWFactory() commands.ParcelRelayUoWFactory {
	return FuncParcelRelayUoWFactory(func() commands.ParcelRelayUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) ownerRelayUoWFactory() commands.OwnerRelayUoWFactory {
	return FuncOwnerRelayUoWFactory(func() commands.OwnerRelayUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncRelayPointUoWFactory func() commands.RelayPointUoW

func (f FuncRelayPointUoWFactory) Create() commands.RelayPointUoW {
	return f()
}

type FuncOwnerUoWFactory func() commands.OwnerUoW

func (f FuncOwnerUoWFactory) Create() commands.OwnerUoW {
	return f()
}

type FuncParcelRelayUoWFactory func() commands.ParcelRelayUoW

func (f FuncParcelRelayUoWFactory) Create() commands.ParcelRelayUoW {
	return f()
}

type FuncOwnerRelayUoWFactory func() commands.OwnerRelayUoW

func (f FuncOwnerRelayUoWFactory) Create() commands.OwnerRelayUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
