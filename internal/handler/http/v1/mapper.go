package v1

import "github.com/shenikar/safety_response_coordinator/internal/models"

// DTOToIncidentModel преобразует DTO регистрации в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		Category:        models.IncidentCategory(dto.Category),
		Severity:        dto.Severity,
		Priority:        models.Priority(dto.Priority),
		Description:     dto.Description,
		Passenger:       dtoToParty(dto.Passenger),
		Driver:          dtoToParty(dto.Driver),
		Vehicle:         models.Vehicle(dto.Vehicle),
		CurrentLocation: dtoToLocation(dto.CurrentLocation),
		Pickup:          dtoToLocation(dto.Pickup),
		Dropoff:         dtoToLocation(dto.Dropoff),
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	timeline := model.Timeline
	if timeline == nil {
		timeline = []models.TimelineEntry{}
	}
	messages := model.Messages
	if messages == nil {
		messages = []models.Message{}
	}
	return &IncidentResponse{
		ID:               model.ID,
		Category:         string(model.Category),
		Severity:         model.Severity,
		Priority:         string(model.Priority),
		Status:           string(model.Status),
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
		ResponseDeadline: model.ResponseDeadline,
		Passenger:        partyToDTO(model.Passenger),
		Driver:           partyToDTO(model.Driver),
		Vehicle:          VehicleDTO(model.Vehicle),
		CurrentLocation:  locationToDTO(model.CurrentLocation),
		Pickup:           locationToDTO(model.Pickup),
		Dropoff:          locationToDTO(model.Dropoff),
		Description:      model.Description,
		Timeline:         timeline,
		Messages:         messages,
		Intelligence:     model.Intelligence,
		Version:          model.Version,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func DTOToStaffModel(dto StaffRequest) models.ERTStaffMember {
	return models.ERTStaffMember{
		ID:             dto.ID,
		Name:           dto.Name,
		Role:           dto.Role,
		Status:         models.StaffStatus(dto.Status),
		ETAMinutes:     dto.ETAMinutes,
		Location:       dtoToLocation(dto.Location),
		Skills:         dto.Skills,
		Certifications: dto.Certifications,
	}
}

func DTOToLiveEvent(dto LiveEventRequest) models.LiveEvent {
	severity := models.EventSeverity(dto.Severity)
	if severity == "" {
		severity = models.SeverityInfo
	}
	return models.LiveEvent{
		Type:                models.EventType(dto.Type),
		Message:             dto.Message,
		Severity:            severity,
		IncidentID:          dto.IncidentID,
		Status:              models.IncidentStatus(dto.Status),
		ResponseTimeSeconds: dto.ResponseTimeSeconds,
	}
}

func dtoToParty(dto PartyDTO) models.Party {
	return models.Party(dto)
}

func partyToDTO(p models.Party) PartyDTO {
	return PartyDTO(p)
}

func dtoToLocation(dto LocationDTO) models.Location {
	return models.Location(dto)
}

func locationToDTO(l models.Location) LocationDTO {
	return LocationDTO(l)
}
