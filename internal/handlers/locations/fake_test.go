package locations

import (
	"net/http/httptest"
	"strings"

	"github.com/aryan100k/Storoo-Backend/internal/store"
	"github.com/gin-gonic/gin"
)

// fakeStore implements store.Store in memory and counts every call so tests
// can assert which store operations a handler performed.
type fakeStore struct {
	insertUserCalls    int
	insertedUsers      []store.NewUser
	insertUserErr      error
	nextUserID         string
	locationsCalls     int
	locationRows       []store.Location
	locationsErr       error
	firstLocationCalls int
	insertBookingCalls int
	insertedBookings   []store.NewBooking
	insertBookingErr   error
	bookingByIDCalls   int
	record             store.BookingRecord
	recordErr          error
}

var _ store.Store = (*fakeStore)(nil)

func (f *fakeStore) InsertUser(u store.NewUser) (store.User, error) {
	f.insertUserCalls++
	if f.insertUserErr != nil {
		return store.User{}, f.insertUserErr
	}
	f.insertedUsers = append(f.insertedUsers, u)
	id := f.nextUserID
	if id == "" {
		id = "U1"
	}
	return store.User{ID: id, Name: u.Name, Email: u.Email, Phone: u.Phone}, nil
}

func (f *fakeStore) InsertUsers(rows []store.NewUser) ([]store.User, error) {
	out := make([]store.User, 0, len(rows))
	for _, r := range rows {
		u, err := f.InsertUser(r)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeStore) Locations() ([]store.Location, error) {
	f.locationsCalls++
	if f.locationsErr != nil {
		return nil, f.locationsErr
	}
	return f.locationRows, nil
}

func (f *fakeStore) FirstLocation() (store.Location, error) {
	f.firstLocationCalls++
	if f.locationsErr != nil {
		return nil, f.locationsErr
	}
	if len(f.locationRows) == 0 {
		return nil, store.ErrNotFound
	}
	return f.locationRows[0], nil
}

func (f *fakeStore) InsertBooking(b store.NewBooking) ([]store.Booking, error) {
	f.insertBookingCalls++
	if f.insertBookingErr != nil {
		return nil, f.insertBookingErr
	}
	f.insertedBookings = append(f.insertedBookings, b)
	return []store.Booking{{
		ID:          "B1",
		UserID:      b.UserID,
		LocationID:  b.LocationID,
		LuggageType: b.LuggageType,
		Duration:    b.Duration,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}}, nil
}

func (f *fakeStore) BookingByID(string) (store.BookingRecord, error) {
	f.bookingByIDCalls++
	if f.recordErr != nil {
		return store.BookingRecord{}, f.recordErr
	}
	return f.record, nil
}

func (f *fakeStore) totalCalls() int {
	return f.insertUserCalls + f.locationsCalls + f.firstLocationCalls +
		f.insertBookingCalls + f.bookingByIDCalls
}

func newRouter(s store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(s)
	r.GET("/api/locations/test", h.Ping)
	r.GET("/api/locations/locations", h.List)
	r.POST("/api/locations/book", h.Book)
	r.GET("/api/locations/booking/:bookingId/status", h.Status)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
