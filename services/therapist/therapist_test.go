package therapist

import (
	"sync"
	"testing"

	"trackcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	users   map[string]*models.User
	setDocs map[string]bson.M
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User), setDocs: make(map[string]bson.M)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Update(u *models.User) error { return r.Create(u) }

func (r *fakeUserRepo) UpdateSetDocument(id string, doc bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setDocs[id] = doc
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(string) (*models.User, error)    { return nil, nil }
func (r *fakeUserRepo) GetByUsername(string) (*models.User, error) { return nil, nil }

func (r *fakeUserRepo) GetAllByRole(role string) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

type fakeTimeslotRepo struct {
	mu    sync.Mutex
	slots map[string][]models.TherapistTimeSlot
}

func newFakeTimeslotRepo() *fakeTimeslotRepo {
	return &fakeTimeslotRepo{slots: make(map[string][]models.TherapistTimeSlot)}
}

func (r *fakeTimeslotRepo) ReplaceForTherapist(id string, slots []models.TherapistTimeSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[id] = slots
	return nil
}

func (r *fakeTimeslotRepo) GetByTherapistAndDay(id, day string) ([]models.TherapistTimeSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.TherapistTimeSlot
	for _, s := range r.slots[id] {
		if s.Day == day {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeTimeslotRepo) GetAllByTherapist(id string) ([]models.TherapistTimeSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slots[id], nil
}

func (r *fakeTimeslotRepo) DeleteAllByTherapist(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, id)
	return nil
}

func drRivers() *models.User {
	return &models.User{
		ID:              "t1",
		Username:        "asha",
		Role:            models.RoleTherapist,
		FirstName:       "Asha",
		LastName:        "Rivers",
		Qualification:   "MSc Speech Therapy",
		PricePerSession: 40,
		AvailableDays:   []string{"Monday"},
	}
}

func TestNormalizeAvailability(t *testing.T) {
	raw := map[string][]string{
		"monday":   {"10:00", "09:00", "10:00", "9am", "18:30"},
		"Funday":   {"09:00"},
		"TUESDAY":  {},
		"Saturday": {"11:30"},
	}

	norm := NormalizeAvailability(raw)
	assert.Equal(t, []string{"09:00", "10:00"}, norm["Monday"])
	assert.Equal(t, []string{"11:30"}, norm["Saturday"])
	// An explicitly empty day stays, recorded as "no times offered".
	times, ok := norm["Tuesday"]
	assert.True(t, ok)
	assert.Empty(t, times)
	// Unknown day names are dropped.
	_, ok = norm["Funday"]
	assert.False(t, ok)
}

func TestNormalizeAvailabilityMergesDayAliases(t *testing.T) {
	norm := NormalizeAvailability(map[string][]string{
		"Monday": {"09:00"},
		"monday": {"10:00"},
	})
	assert.Equal(t, []string{"09:00", "10:00"}, norm["Monday"])
}

func TestListCardsSortedBySurname(t *testing.T) {
	adler := drRivers()
	adler.ID = "t2"
	adler.FirstName = "Ben"
	adler.LastName = "Adler"
	amy := drRivers()
	amy.ID = "t3"
	amy.FirstName = "Amy"
	users := newFakeUserRepo(drRivers(), adler, amy, &models.User{ID: "u1", Role: models.RoleUser})

	svc := NewService(users, newFakeTimeslotRepo())
	cards, err := svc.ListCards()
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, "Ben Adler", cards[0].Name)
	// Same surname falls back to first name.
	assert.Equal(t, "Amy Rivers", cards[1].Name)
	assert.Equal(t, "Asha Rivers", cards[2].Name)
}

func TestGetProfileBuildsAvailabilityFromSlots(t *testing.T) {
	users := newFakeUserRepo(drRivers())
	timeslots := newFakeTimeslotRepo()
	require.NoError(t, timeslots.ReplaceForTherapist("t1", []models.TherapistTimeSlot{
		{TherapistID: "t1", Day: "Monday", Time: "10:00"},
		{TherapistID: "t1", Day: "Monday", Time: "09:00"},
	}))

	svc := NewService(users, timeslots)
	profile, err := svc.GetProfile("t1")
	require.NoError(t, err)
	assert.True(t, profile.Availability.Available)
	assert.Equal(t, 2, profile.Availability.TotalSlots)
	assert.Equal(t, []string{"09:00", "10:00"}, profile.Availability.Days["Monday"])
}

func TestGetProfileFallsBackToAvailableDays(t *testing.T) {
	users := newFakeUserRepo(drRivers())
	svc := NewService(users, newFakeTimeslotRepo())

	profile, err := svc.GetProfile("t1")
	require.NoError(t, err)
	assert.True(t, profile.Availability.Available)
}

func TestGetProfileUnknownID(t *testing.T) {
	svc := NewService(newFakeUserRepo(), newFakeTimeslotRepo())
	_, err := svc.GetProfile("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateSettings(t *testing.T) {
	users := newFakeUserRepo(drRivers())
	timeslots := newFakeTimeslotRepo()
	svc := NewService(users, timeslots)

	profile, err := svc.UpdateSettings("t1", models.UpdateTherapistSettingsRequest{
		PricePerSession: 55,
		Availability: map[string][]string{
			"wednesday": {"14:00", "13:30", "14:00"},
			"Monday":    {"09:00"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 55.0, profile.PricePerSession)
	assert.True(t, profile.Availability.Available)
	assert.Equal(t, 3, profile.Availability.TotalSlots)

	stored, err := timeslots.GetAllByTherapist("t1")
	require.NoError(t, err)
	assert.Len(t, stored, 3)

	doc := users.setDocs["t1"]
	require.NotNil(t, doc)
	assert.Equal(t, []string{"Monday", "Wednesday"}, doc["availableDays"])
	assert.Equal(t, 55.0, doc["pricePerSession"])
}

func TestUpdateSettingsEmptyAvailabilityMeansUnavailable(t *testing.T) {
	users := newFakeUserRepo(drRivers())
	timeslots := newFakeTimeslotRepo()
	svc := NewService(users, timeslots)

	profile, err := svc.UpdateSettings("t1", models.UpdateTherapistSettingsRequest{
		PricePerSession: 40,
		Availability:    map[string][]string{"Monday": {"bogus"}},
	})
	require.NoError(t, err)
	assert.False(t, profile.Availability.Available)

	doc := users.setDocs["t1"]
	assert.Equal(t, []string{}, doc["availableDays"])
}

func TestUpdateSettingsRejectsNonTherapist(t *testing.T) {
	users := newFakeUserRepo(&models.User{ID: "u1", Role: models.RoleUser})
	svc := NewService(users, newFakeTimeslotRepo())

	_, err := svc.UpdateSettings("u1", models.UpdateTherapistSettingsRequest{PricePerSession: 10})
	assert.ErrorIs(t, err, ErrNotTherapist)
}
