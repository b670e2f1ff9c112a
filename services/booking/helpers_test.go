package booking

import (
	"sort"
	"sync"
	"time"

	"trackcare/models"

	"go.mongodb.org/mongo-driver/bson"
)

// In-memory repository fakes shared by the package tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
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

func (r *fakeUserRepo) Update(u *models.User) error {
	return r.Create(u)
}

func (r *fakeUserRepo) UpdateSetDocument(id string, _ bson.M) error {
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

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

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) Update(b *models.Booking) error {
	return r.Create(b)
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) ExistsAt(therapistID, date, timeOfDay string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.TherapistID == therapistID && b.Date == date && b.Time == timeOfDay && b.Status != models.BookingCancelled {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) AllByUser(userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeBookingRepo) AllByTherapistAndDate(therapistID, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.TherapistID == therapistID && b.Date == date && b.Status != models.BookingCancelled {
			out = append(out, *b)
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

func (r *fakeTimeslotRepo) offer(therapistID, day string, times ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range times {
		r.slots[therapistID] = append(r.slots[therapistID], models.TherapistTimeSlot{
			TherapistID: therapistID,
			Day:         day,
			Time:        t,
		})
	}
}

func (r *fakeTimeslotRepo) ReplaceForTherapist(therapistID string, slots []models.TherapistTimeSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[therapistID] = slots
	return nil
}

func (r *fakeTimeslotRepo) GetByTherapistAndDay(therapistID, day string) ([]models.TherapistTimeSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.TherapistTimeSlot
	for _, s := range r.slots[therapistID] {
		if s.Day == day {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeTimeslotRepo) GetAllByTherapist(therapistID string) ([]models.TherapistTimeSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slots[therapistID], nil
}

func (r *fakeTimeslotRepo) DeleteAllByTherapist(therapistID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, therapistID)
	return nil
}

// fakeSlotSource serves canned slot lists keyed by therapist and date and
// counts queries.
type fakeSlotSource struct {
	mu      sync.Mutex
	results map[string][]string
	err     error
	queries int
}

func newFakeSlotSource() *fakeSlotSource {
	return &fakeSlotSource{results: make(map[string][]string)}
}

func (f *fakeSlotSource) set(therapistID, date string, slots []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results[therapistID+"|"+date] = slots
}

func (f *fakeSlotSource) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeSlotSource) SlotsFor(therapistID, date string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries++
	if f.err != nil {
		return nil, f.err
	}
	slots, ok := f.results[therapistID+"|"+date]
	if !ok {
		return []string{}, nil
	}
	return slots, nil
}

// futureDate returns a date n days out formatted as the API expects, along
// with its weekday name.
func futureDate(n int) (string, string) {
	d := time.Now().AddDate(0, 0, n)
	return d.Format(dateLayout), models.DayOfDate(d)
}

func therapistUser(id string) *models.User {
	return &models.User{
		ID:            id,
		Username:      "dr-" + id,
		Email:         id + "@trackcare.test",
		Role:          models.RoleTherapist,
		FirstName:     "Asha",
		LastName:      "Rivers",
		AvailableDays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
	}
}
