package roomhandler

import (
	"hotel-ops-backend/db"
	housekeepinghandler "hotel-ops-backend/lib/housekeeping"
	roomstore "hotel-ops-backend/lib/room/store"
	"hotel-ops-backend/lib/utils/apperrors"
	"hotel-ops-backend/models"
	roomapimodels "hotel-ops-backend/models/api/room"
	dbmodels "hotel-ops-backend/models/db"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(actor models.AuthUser, data roomapimodels.RoomCreateData) (id string, err error)
	GetByID(roomID string) (*roomapimodels.RoomView, error)
	List() ([]roomapimodels.RoomView, error)
	SetStatus(actor models.AuthUser, roomID string, data roomapimodels.RoomStatusData) error
	CheckIn(actor models.AuthUser, roomID string, data roomapimodels.CheckinData) (*roomapimodels.CheckinView, error)
	CheckOut(actor models.AuthUser, roomID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: roomstore.NewInstance(db.DB),
	}
}

type impl struct {
	store roomstore.Provider
}

func (i impl) GetLogger(roomID string) *log.Entry {
	return log.WithField("room_id", roomID)
}

func (i impl) Create(actor models.AuthUser, data roomapimodels.RoomCreateData) (string, error) {
	if !actor.Role.IsSupervisor() {
		return "", apperrors.Forbidden("only a supervisor may create rooms")
	}
	if err := data.Validate(); err != nil {
		return "", apperrors.Validation(err.Error())
	}
	existing, err := i.store.GetByNumber(data.RoomNumber)
	if err != nil {
		return "", errors.Wrap(err, "failed to check room number")
	}
	if existing != nil {
		return "", apperrors.Conflict("room number is already taken")
	}
	id, err := i.store.Create(dbmodels.Room{
		RoomNumber:      data.RoomNumber,
		Floor:           data.Floor,
		Category:        data.Category,
		Status:          models.RoomStatusClean,
		OccupancyStatus: models.OccupancyVacant,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to create room")
	}
	return id, nil
}

func (i impl) GetByID(roomID string) (*roomapimodels.RoomView, error) {
	rec, err := i.getExisting(roomID)
	if err != nil {
		return nil, err
	}
	view := roomapimodels.RoomConvert(*rec)
	return &view, nil
}

func (i impl) List() ([]roomapimodels.RoomView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rooms")
	}
	result := make([]roomapimodels.RoomView, 0, len(list))
	for _, rec := range list {
		result = append(result, roomapimodels.RoomConvert(rec))
	}
	return result, nil
}

func (i impl) SetStatus(actor models.AuthUser, roomID string, data roomapimodels.RoomStatusData) error {
	if actor.Role == models.UserRoleRadnik {
		return apperrors.Forbidden("technicians may not change room status")
	}
	if err := data.Validate(); err != nil {
		return apperrors.Validation(err.Error())
	}
	rec, err := i.getExisting(roomID)
	if err != nil {
		return err
	}
	err = i.store.Update(rec.ID, map[string]interface{}{
		"status":         data.Status,
		"priority_score": scoreFor(data.Status, rec.OccupancyStatus),
	})
	if err != nil {
		return errors.Wrap(err, "failed to update room status")
	}
	return nil
}

// CheckIn occupies the room and issues a fresh guest session token. The token
// is returned once and never listed afterwards.
func (i impl) CheckIn(actor models.AuthUser, roomID string, data roomapimodels.CheckinData) (*roomapimodels.CheckinView, error) {
	if !actor.Role.IsSupervisor() && actor.Role != models.UserRoleRecepcija {
		return nil, apperrors.Forbidden("only reception or a supervisor may check guests in")
	}
	if err := data.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	rec, err := i.getExisting(roomID)
	if err != nil {
		return nil, err
	}
	if rec.OccupancyStatus.HasActiveStay() {
		return nil, apperrors.Conflict("room is already occupied")
	}
	now := time.Now()
	token := uuid.NewString()
	err = i.store.Update(rec.ID, map[string]interface{}{
		"occupancy_status":    models.OccupancyOccupied,
		"guest_name":          data.GuestName,
		"guest_phone":         data.GuestPhone,
		"guest_count":         data.GuestCount,
		"checkin_date":        now,
		"checkout_date":       data.CheckoutDate,
		"guest_session_token": token,
		"needs_minibar_check": false,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to check in")
	}
	rec, err = i.getExisting(roomID)
	if err != nil {
		return nil, err
	}
	return &roomapimodels.CheckinView{
		Room:         roomapimodels.RoomConvert(*rec),
		SessionToken: token,
	}, nil
}

// CheckOut vacates the room and queues the checkout clean. Task creation is
// best-effort: its failure is logged and the checkout still succeeds.
func (i impl) CheckOut(actor models.AuthUser, roomID string) error {
	if !actor.Role.IsSupervisor() && actor.Role != models.UserRoleRecepcija {
		return apperrors.Forbidden("only reception or a supervisor may check guests out")
	}
	rec, err := i.getExisting(roomID)
	if err != nil {
		return err
	}
	if !rec.OccupancyStatus.HasActiveStay() {
		return apperrors.Validation("room has no active stay")
	}
	err = i.store.Update(rec.ID, map[string]interface{}{
		"occupancy_status":    models.OccupancyCheckout,
		"status":              models.RoomStatusDirty,
		"guest_name":          "",
		"guest_phone":         "",
		"guest_count":         0,
		"checkin_date":        nil,
		"checkout_date":       nil,
		"guest_session_token": nil,
		"needs_minibar_check": true,
		"priority_score":      scoreFor(models.RoomStatusDirty, models.OccupancyCheckout),
	})
	if err != nil {
		return errors.Wrap(err, "failed to check out")
	}
	rec.OccupancyStatus = models.OccupancyCheckout
	if _, hkErr := housekeepinghandler.Instance.CreateForCheckout(*rec); hkErr != nil {
		i.GetLogger(roomID).WithError(hkErr).Error("failed to queue checkout cleaning task")
	}
	return nil
}

// scoreFor ranks rooms for the housekeeping queue: checkout rooms before
// stayover rooms, dirty before anything else.
func scoreFor(status models.RoomStatus, occupancy models.OccupancyStatus) int {
	score := 0
	if status == models.RoomStatusDirty {
		score += 50
	}
	if occupancy == models.OccupancyCheckout {
		score += 40
	}
	if occupancy == models.OccupancyCheckinExpected {
		score += 30
	}
	return score
}

func (i impl) getExisting(roomID string) (*dbmodels.Room, error) {
	rec, err := i.store.GetByID(roomID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get room")
	}
	if rec == nil {
		return nil, apperrors.NotFound("room not found")
	}
	return rec, nil
}
