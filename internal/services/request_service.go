package services

import (
	"time"

	"shareit/internal/dto"
	"shareit/internal/models"
	"shareit/internal/repositories"
)

// RequestService handles the request board: posting "I wish somebody shared
// an X" requests and reading them back with their answers, the available
// items that reference a request.
type RequestService struct {
	requestRepo repositories.RequestRepository
	userRepo    repositories.UserRepository
	itemRepo    repositories.ItemRepository
}

// NewRequestService creates a new RequestService.
func NewRequestService(requestRepo repositories.RequestRepository, userRepo repositories.UserRepository,
	itemRepo repositories.ItemRepository) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
	}
}

// AddRequest posts a new request with the server clock as creation time.
func (s *RequestService) AddRequest(requestorID int64, req dto.NewRequestDto) (*dto.RequestDto, error) {
	requestor, err := s.userRepo.GetByID(requestorID)
	if err != nil {
		return nil, err
	}

	request := models.Request{
		RequestorID: requestor.ID,
		Requestor:   *requestor,
		Description: req.Description,
		Created:     time.Now(),
	}
	if err := s.requestRepo.Create(&request); err != nil {
		return nil, err
	}
	result := dto.MapToRequestDto(request, nil)
	return &result, nil
}

// GetRequestsByRequestor lists the user's own requests, newest first, each
// with its answers.
func (s *RequestService) GetRequestsByRequestor(requestorID int64) ([]dto.RequestDto, error) {
	if _, err := s.userRepo.GetByID(requestorID); err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.GetAllByRequestor(requestorID)
	if err != nil {
		return nil, err
	}

	answers, err := s.answersByRequest(requests)
	if err != nil {
		return nil, err
	}
	result := make([]dto.RequestDto, 0, len(requests))
	for _, request := range requests {
		result = append(result, dto.MapToRequestDto(request, answers[request.ID]))
	}
	return result, nil
}

// GetAllOthers lists the requests of other users, newest first, without
// answers.
func (s *RequestService) GetAllOthers(userID int64) ([]dto.RequestDto, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.GetAllOthers(userID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.RequestDto, 0, len(requests))
	for _, request := range requests {
		result = append(result, dto.MapToRequestDto(request, nil))
	}
	return result, nil
}

// GetRequestByID returns one request with its answers.
func (s *RequestService) GetRequestByID(userID, requestID int64) (*dto.RequestDto, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, err
	}
	request, err := s.requestRepo.GetByID(requestID)
	if err != nil {
		return nil, err
	}

	answers, err := s.answersByRequest([]models.Request{*request})
	if err != nil {
		return nil, err
	}
	result := dto.MapToRequestDto(*request, answers[request.ID])
	return &result, nil
}

// answersByRequest batch-fetches the available items answering the given
// requests and groups them by request id.
func (s *RequestService) answersByRequest(requests []models.Request) (map[int64][]dto.ItemShortDto, error) {
	if len(requests) == 0 {
		return map[int64][]dto.ItemShortDto{}, nil
	}
	ids := make([]int64, 0, len(requests))
	for _, request := range requests {
		ids = append(ids, request.ID)
	}

	items, err := s.itemRepo.FindByRequestIDs(ids)
	if err != nil {
		return nil, err
	}
	answers := make(map[int64][]dto.ItemShortDto)
	for _, item := range items {
		if item.RequestID == nil {
			continue
		}
		answers[*item.RequestID] = append(answers[*item.RequestID], dto.MapToItemShortDto(item))
	}
	return answers, nil
}
