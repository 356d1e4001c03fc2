package devicetokenhandler

import (
	devicetokenstore "hotel-ops-backend/lib/device-token/store"
	"hotel-ops-backend/models"
	dbmodels "hotel-ops-backend/models/db"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type tokenKey struct {
	userID string
	token  string
}

// fakeTokenStore keeps registrations in memory with the same active-flag
// semantics the real store gives them.
type fakeTokenStore struct {
	active map[tokenKey]bool
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{active: map[tokenKey]bool{}}
}

func (s *fakeTokenStore) DeactivateOtherOwners(userID, pushToken string) error {
	for key := range s.active {
		if key.token == pushToken && key.userID != userID {
			s.active[key] = false
		}
	}
	return nil
}

func (s *fakeTokenStore) Upsert(userID, pushToken string, platform models.DevicePlatform) error {
	s.active[tokenKey{userID: userID, token: pushToken}] = true
	return nil
}

func (s *fakeTokenStore) ListActive(userID string) ([]dbmodels.DeviceToken, error) {
	list := []dbmodels.DeviceToken{}
	for key, isActive := range s.active {
		if key.userID == userID && isActive {
			list = append(list, dbmodels.DeviceToken{UserID: key.userID, PushToken: key.token, IsActive: true})
		}
	}
	return list, nil
}

func (s *fakeTokenStore) Deactivate(pushToken string) error {
	for key := range s.active {
		if key.token == pushToken {
			s.active[key] = false
		}
	}
	return nil
}

func (s *fakeTokenStore) DeactivateForUser(userID string) error {
	for key := range s.active {
		if key.userID == userID {
			s.active[key] = false
		}
	}
	return nil
}

func newTestHandler(store *fakeTokenStore) impl {
	return impl{
		store: store,
		runTx: func(fn func(txStore devicetokenstore.Provider) error) error {
			return fn(store)
		},
	}
}

func hasToken(list []dbmodels.DeviceToken, token string) bool {
	for _, rec := range list {
		if rec.PushToken == token {
			return true
		}
	}
	return false
}

func TestRegisterTokenExclusivity(t *testing.T) {
	store := newFakeTokenStore()
	handler := newTestHandler(store)

	require.Nil(t, handler.Register("user-a", "tok-1", models.PlatformAndroid))
	listA, err := handler.ActiveTokensFor("user-a")
	require.Nil(t, err)
	require.True(t, hasToken(listA, "tok-1"))

	// shared device changes hands
	require.Nil(t, handler.Register("user-b", "tok-1", models.PlatformAndroid))

	listA, err = handler.ActiveTokensFor("user-a")
	require.Nil(t, err)
	require.False(t, hasToken(listA, "tok-1"))

	listB, err := handler.ActiveTokensFor("user-b")
	require.Nil(t, err)
	require.True(t, hasToken(listB, "tok-1"))
}

func TestRegisterFallsBackWhenRevocationFails(t *testing.T) {
	store := newFakeTokenStore()
	handler := impl{
		store: store,
		runTx: func(fn func(txStore devicetokenstore.Provider) error) error {
			return errors.New("deadlock")
		},
	}

	// registration must still land via the bare upsert
	require.Nil(t, handler.Register("user-a", "tok-1", models.PlatformIOS))
	listA, err := handler.ActiveTokensFor("user-a")
	require.Nil(t, err)
	require.True(t, hasToken(listA, "tok-1"))
}

func TestRegisterValidation(t *testing.T) {
	handler := newTestHandler(newFakeTokenStore())
	require.NotNil(t, handler.Register("user-a", "", models.PlatformAndroid))
	require.NotNil(t, handler.Register("user-a", "tok-1", models.DevicePlatform("toaster")))
}

func TestLogoutDeactivatesAllUserTokens(t *testing.T) {
	store := newFakeTokenStore()
	handler := newTestHandler(store)

	require.Nil(t, handler.Register("user-a", "tok-1", models.PlatformAndroid))
	require.Nil(t, handler.Register("user-a", "tok-2", models.PlatformWeb))
	require.Nil(t, handler.Logout("user-a"))

	listA, err := handler.ActiveTokensFor("user-a")
	require.Nil(t, err)
	require.Empty(t, listA)
}
