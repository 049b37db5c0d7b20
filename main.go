package main

import (
	"os"

	"atlas-marina/database"
	clientConsumer "atlas-marina/kafka/consumer/client"
	reservationConsumer "atlas-marina/kafka/consumer/reservation"
	"atlas-marina/logger"
	reservationService "atlas-marina/reservation"
	"atlas-marina/scheduler"
	"atlas-marina/service"
	"atlas-marina/tracing"

	"github.com/Chronicle20/atlas-kafka/consumer"
	"github.com/Chronicle20/atlas-rest/server"
)

const serviceName = "atlas-marina"

type Server struct {
	baseUrl string
	prefix  string
}

func (s Server) GetBaseURL() string {
	return s.baseUrl
}

func (s Server) GetPrefix() string {
	return s.prefix
}

func GetServer() Server {
	return Server{
		baseUrl: "",
		prefix:  "/api/mar/",
	}
}

func main() {
	l := logger.CreateLogger(serviceName)
	l.Infoln("Starting main service.")

	tdm := service.GetTeardownManager()

	tc, err := tracing.InitTracer(l)(serviceName)
	if err != nil {
		l.WithError(err).Fatal("Unable to initialize tracer.")
	}

	db := database.Connect(l, database.SetMigrations(reservationService.Migration))

	// Initialize overdue sweep scheduler
	overdueSweepScheduler := scheduler.NewOverdueSweepScheduler(l, tdm.Context(), db)
	overdueSweepScheduler.Start()

	// Initialize daily unlock scheduler
	dailyUnlockScheduler := scheduler.NewDailyUnlockScheduler(l, tdm.Context(), db)
	dailyUnlockScheduler.Start()

	// Register scheduler teardown
	tdm.TeardownFunc(func() {
		overdueSweepScheduler.Stop()
		dailyUnlockScheduler.Stop()
	})

	// Initialize Kafka consumers
	consumerManager := consumer.GetManager()
	reservationConsumer.InitConsumers(l, tdm.Context(), db)(
		consumerManager.AddConsumer(l, tdm.Context(), tdm.WaitGroup()),
	)("marina-service")
	clientConsumer.InitConsumers(l, tdm.Context(), db)(
		consumerManager.AddConsumer(l, tdm.Context(), tdm.WaitGroup()),
	)("marina-service")

	server.New(l).
		WithContext(tdm.Context()).
		WithWaitGroup(tdm.WaitGroup()).
		SetBasePath(GetServer().GetPrefix()).
		AddRouteInitializer(reservationService.InitializeRoutes(db)(GetServer())).
		SetPort(os.Getenv("REST_PORT")).
		Run()

	tdm.TeardownFunc(tracing.Teardown(l)(tc))

	tdm.Wait()
	l.Infoln("Service shutdown.")
}
