package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/mergington/internal/app/repositories"
	"github.com/yigit/mergington/internal/pkg/logger"
)

// Services groups the application services
type Services struct {
	ActivityService ActivityService
}

// NewServices builds every service on top of repos
func NewServices(repos *repositories.Repositories, lgr zerolog.Logger) *Services {
	return &Services{
		ActivityService: NewActivityService(repos.ActivityRepository, logger.WithComponent(lgr, "activity_service")),
	}
}
