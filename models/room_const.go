package models

type RoomStatus string

const (
	RoomStatusClean        RoomStatus = "clean"
	RoomStatusDirty        RoomStatus = "dirty"
	RoomStatusInCleaning   RoomStatus = "in_cleaning"
	RoomStatusInspected    RoomStatus = "inspected"
	RoomStatusOutOfOrder   RoomStatus = "out_of_order"
	RoomStatusDoNotDisturb RoomStatus = "do_not_disturb"
)

func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomStatusClean, RoomStatusDirty, RoomStatusInCleaning,
		RoomStatusInspected, RoomStatusOutOfOrder, RoomStatusDoNotDisturb:
		return true
	}
	return false
}

type OccupancyStatus string

const (
	OccupancyVacant           OccupancyStatus = "vacant"
	OccupancyOccupied         OccupancyStatus = "occupied"
	OccupancyCheckout         OccupancyStatus = "checkout"
	OccupancyCheckinExpected  OccupancyStatus = "checkin_expected"
	OccupancyCheckoutExpected OccupancyStatus = "checkout_expected"
)

func (s OccupancyStatus) IsValid() bool {
	switch s {
	case OccupancyVacant, OccupancyOccupied, OccupancyCheckout,
		OccupancyCheckinExpected, OccupancyCheckoutExpected:
		return true
	}
	return false
}

// HasActiveStay reports whether a guest session may exist for the room.
// The guest session token is non-null only while this holds.
func (s OccupancyStatus) HasActiveStay() bool {
	return s == OccupancyOccupied || s == OccupancyCheckoutExpected
}
