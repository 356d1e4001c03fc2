package guestrequesthandler

import (
	"hotel-ops-backend/db"
	guestrequeststore "hotel-ops-backend/lib/guest-request/store"
	notificationhandler "hotel-ops-backend/lib/notification"
	roomstore "hotel-ops-backend/lib/room/store"
	"hotel-ops-backend/lib/utils/apperrors"
	"hotel-ops-backend/models"
	guestapimodels "hotel-ops-backend/models/api/guest"
	dbmodels "hotel-ops-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type Provider interface {
	// CreateBySession files a request on behalf of the guest identified by the
	// room's QR session token.
	CreateBySession(sessionToken string, data guestapimodels.GuestRequestCreateData) (id string, err error)
	ListBySession(sessionToken string) ([]guestapimodels.GuestRequestView, error)
	MarkSeen(actor models.AuthUser, requestID string) error
	SetStatus(actor models.AuthUser, requestID string, data guestapimodels.GuestRequestStatusData) error
	Forward(actor models.AuthUser, requestID string, data guestapimodels.GuestRequestForwardData) error
	GetByID(requestID string) (*guestapimodels.GuestRequestView, error)
	ListOpen() ([]guestapimodels.GuestRequestView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:     guestrequeststore.NewInstance(db.DB),
		roomStore: roomstore.NewInstance(db.DB),
	}
}

type impl struct {
	store     guestrequeststore.Provider
	roomStore roomstore.Provider
}

func (i impl) CreateBySession(sessionToken string, data guestapimodels.GuestRequestCreateData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", apperrors.Validation(err.Error())
	}
	room, err := i.resolveSession(sessionToken)
	if err != nil {
		return "", err
	}
	id, err := i.store.Create(dbmodels.GuestRequest{
		RoomID:      room.ID,
		RoomNumber:  room.RoomNumber,
		RequestType: data.RequestType,
		Status:      models.GuestRequestStatusNew,
		Description: data.Description,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to create guest request")
	}
	notificationhandler.Instance.NotifyRole(models.UserRoleRecepcija, models.NotifyGuestRequestNew,
		"Room "+room.RoomNumber, "Guest request: "+data.Description)
	return id, nil
}

func (i impl) ListBySession(sessionToken string) ([]guestapimodels.GuestRequestView, error) {
	room, err := i.resolveSession(sessionToken)
	if err != nil {
		return nil, err
	}
	list, err := i.store.ListByRoom(room.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guest requests")
	}
	result := make([]guestapimodels.GuestRequestView, 0, len(list))
	for _, rec := range list {
		result = append(result, guestapimodels.GuestRequestConvert(rec))
	}
	return result, nil
}

func (i impl) MarkSeen(actor models.AuthUser, requestID string) error {
	rec, err := i.getExisting(requestID)
	if err != nil {
		return err
	}
	if rec.SeenAt != nil {
		return nil
	}
	updMap := map[string]interface{}{
		"seen_at": time.Now(),
	}
	if rec.Status == models.GuestRequestStatusNew {
		updMap["status"] = models.GuestRequestStatusSeen
	}
	err = i.store.Update(requestID, updMap)
	if err != nil {
		return errors.Wrap(err, "failed to mark guest request as seen")
	}
	return nil
}

func (i impl) SetStatus(actor models.AuthUser, requestID string, data guestapimodels.GuestRequestStatusData) error {
	if err := data.Validate(); err != nil {
		return apperrors.Validation(err.Error())
	}
	rec, err := i.getExisting(requestID)
	if err != nil {
		return err
	}
	if !rec.Status.IsAllowChange(data.Status) {
		return apperrors.Validation("status change is not allowed")
	}
	updMap := map[string]interface{}{
		"status": data.Status,
	}
	if data.Status == models.GuestRequestStatusCompleted {
		updMap["completed_at"] = time.Now()
	}
	err = i.store.Update(requestID, updMap)
	if err != nil {
		return errors.Wrap(err, "failed to update guest request status")
	}
	if data.Status == models.GuestRequestStatusCompleted {
		notificationhandler.Instance.NotifyRole(models.UserRoleRecepcija, models.NotifyGuestRequestDone,
			"Room "+rec.RoomNumber, "Guest request completed")
	}
	return nil
}

// Forward hands the request to a department once; a second forward is a
// conflict, the request already has an owner.
func (i impl) Forward(actor models.AuthUser, requestID string, data guestapimodels.GuestRequestForwardData) error {
	if err := data.Validate(); err != nil {
		return apperrors.Validation(err.Error())
	}
	rec, err := i.getExisting(requestID)
	if err != nil {
		return err
	}
	if rec.IsForwarded() {
		return apperrors.Conflict("guest request is already forwarded")
	}
	if rec.Status == models.GuestRequestStatusCompleted {
		return apperrors.Validation("completed guest request cannot be forwarded")
	}
	err = i.store.Update(requestID, map[string]interface{}{
		"forwarded_to_department": data.Department,
		"forwarded_by_id":         actor.ID,
		"forwarded_at":            time.Now(),
		"status":                  models.GuestRequestStatusInProgress,
	})
	if err != nil {
		return errors.Wrap(err, "failed to forward guest request")
	}
	notificationhandler.Instance.NotifyRole(data.Department.HandlerRole(), models.NotifyGuestRequestFwd,
		"Room "+rec.RoomNumber, "Guest request: "+rec.Description)
	return nil
}

func (i impl) GetByID(requestID string) (*guestapimodels.GuestRequestView, error) {
	rec, err := i.getExisting(requestID)
	if err != nil {
		return nil, err
	}
	view := guestapimodels.GuestRequestConvert(*rec)
	return &view, nil
}

func (i impl) ListOpen() ([]guestapimodels.GuestRequestView, error) {
	list, err := i.store.ListOpen()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guest requests")
	}
	result := make([]guestapimodels.GuestRequestView, 0, len(list))
	for _, rec := range list {
		result = append(result, guestapimodels.GuestRequestConvert(rec))
	}
	return result, nil
}

func (i impl) resolveSession(sessionToken string) (*dbmodels.Room, error) {
	if sessionToken == "" {
		return nil, apperrors.Forbidden("guest session token is required")
	}
	room, err := i.roomStore.GetBySessionToken(sessionToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve guest session")
	}
	if room == nil || !room.HasActiveSession() {
		return nil, apperrors.Forbidden("guest session is not active")
	}
	return room, nil
}

func (i impl) getExisting(requestID string) (*dbmodels.GuestRequest, error) {
	rec, err := i.store.GetByID(requestID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get guest request")
	}
	if rec == nil {
		return nil, apperrors.NotFound("guest request not found")
	}
	return rec, nil
}
