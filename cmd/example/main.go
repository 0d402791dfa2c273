package main

import (
	"context"
	"time"

	"dentalink-client/dentalink"
	"dentalink-client/internal/app/config"
	"dentalink-client/internal/app/drivers/logger"

	"go.uber.org/zap"
)

func main() {
	internalConfig := config.NewInternalConfig()
	log := logger.NewZapLogger(internalConfig)
	defer log.Sync()

	client := dentalink.NewClient(internalConfig.Dentalink.BaseUrl, internalConfig.Dentalink.Token, log)
	ctx := context.Background()

	branches, err := client.FindBranches(ctx, nil)
	if err != nil {
		log.Fatal("failed to list branches", zap.Error(err))
	}
	for _, branch := range branches.Data {
		log.Info("branch",
			zap.Int("id", branch.ID),
			zap.String("name", branch.Name),
			zap.String("city", branch.City),
		)
	}

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -7)
	appointments, err := client.FindAppointments(ctx, &dentalink.AppointmentFilters{
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		log.Fatal("failed to list appointments", zap.Error(err))
	}
	for _, appointment := range appointments.Data {
		log.Info("appointment",
			zap.Int("id", appointment.ID),
			zap.String("date", appointment.Date.Format("2006-01-02")),
			zap.String("patient", appointment.PatientName),
			zap.String("status", appointment.StatusName),
		)
	}
	if appointments.Links != nil && appointments.Links.Next != nil {
		log.Info("more pages available", zap.String("next", *appointments.Links.Next))
	}
}
