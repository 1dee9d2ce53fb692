package services

import (
	"context"

	"github.com/google/uuid"

	"fitcore/internal/models/db_models"
	"fitcore/internal/models/request_models"
	"fitcore/internal/models/response_models"
	"fitcore/internal/repositories"
	"fitcore/pkg/utils"
)

type TrainerServiceInterface interface {
	GetAllTrainers(ctx context.Context) ([]response_models.TrainerResponse, error)
	GetTrainer(ctx context.Context, id uuid.UUID) (*response_models.TrainerResponse, error)
	CreateTrainer(ctx context.Context, request request_models.TrainerRequest) (*response_models.TrainerResponse, error)
	UpdateTrainer(ctx context.Context, id uuid.UUID, request request_models.TrainerRequest) error
	DeleteTrainer(ctx context.Context, id uuid.UUID) error
}

type TrainerService struct {
	trainerRepo repositories.ITrainerRepository
}

func NewTrainerService(trainerRepo repositories.ITrainerRepository) TrainerServiceInterface {
	return &TrainerService{trainerRepo: trainerRepo}
}

func (t *TrainerService) GetAllTrainers(ctx context.Context) ([]response_models.TrainerResponse, error) {
	trainers, err := t.trainerRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.TrainerResponse, 0, len(trainers))
	for _, trainer := range trainers {
		result = append(result, trainerToResponse(trainer))
	}
	return result, nil
}

func (t *TrainerService) GetTrainer(ctx context.Context, id uuid.UUID) (*response_models.TrainerResponse, error) {
	trainer, err := t.trainerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trainer == nil {
		return nil, utils.ErrTrainerNotFound
	}

	response := trainerToResponse(*trainer)
	return &response, nil
}

func (t *TrainerService) CreateTrainer(ctx context.Context, request request_models.TrainerRequest) (*response_models.TrainerResponse, error) {
	trainer := &db_models.Trainer{
		Name:        request.Name,
		SalaryMinor: request.SalaryMinor,
		Phone:       request.Phone,
		Specialties: request.Specialties,
	}

	if err := t.trainerRepo.Insert(ctx, trainer); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := trainerToResponse(*trainer)
	return &response, nil
}

func (t *TrainerService) UpdateTrainer(ctx context.Context, id uuid.UUID, request request_models.TrainerRequest) error {
	trainer := &db_models.Trainer{
		Name:        request.Name,
		SalaryMinor: request.SalaryMinor,
		Phone:       request.Phone,
		Specialties: request.Specialties,
	}
	trainer.ID = id

	affected, err := t.trainerRepo.Update(ctx, trainer)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrTrainerNotFound
	}
	return nil
}

func (t *TrainerService) DeleteTrainer(ctx context.Context, id uuid.UUID) error {
	affected, err := t.trainerRepo.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrTrainerNotFound
	}
	return nil
}

func trainerToResponse(trainer db_models.Trainer) response_models.TrainerResponse {
	return response_models.TrainerResponse{
		ID:          trainer.ID,
		Name:        trainer.Name,
		SalaryMinor: trainer.SalaryMinor,
		Phone:       trainer.Phone,
		Specialties: trainer.Specialties,
	}
}
