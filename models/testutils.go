package models

import (
	"fmt"
	"strconv"

	"github.com/gobuffalo/buffalo"
	"github.com/gobuffalo/pop/v6"

	"github.com/rubineta/claims-api/api"
	"github.com/rubineta/claims-api/domain"
)

// FixturePassword is the plain-text password every user fixture is created with.
const FixturePassword = "test-password-123"

// Fixtures hold slices of model objects created for test fixtures
type Fixtures struct {
	Claims
	Partners
	Users
}

// TestBuffaloContext is a buffalo context used in tests
type TestBuffaloContext struct {
	buffalo.DefaultContext
	params map[any]any
}

// Value returns the value associated with the given key in the test context
func (b *TestBuffaloContext) Value(key any) any {
	return b.params[key]
}

// Set sets the value to be associated with the given key in the test context
func (b *TestBuffaloContext) Set(key string, val any) {
	b.params[key] = val
}

// CreateTestContext sets the domain.ContextKeyCurrentUser to the user param in the TestBuffaloContext
func CreateTestContext(user User) buffalo.Context {
	ctx := &TestBuffaloContext{
		params: map[any]any{},
	}
	ctx.Set(domain.ContextKeyCurrentUser, user)
	return ctx
}

func randStr(n int) string {
	return domain.RandomString(n, "abcdefghijklmnopqrstuvwxyz")
}

// MustCreate saves a record to the database with validation. Panics if any error occurs.
func MustCreate(tx *pop.Connection, f Creatable) {
	if err := f.Create(tx); err != nil {
		panic(fmt.Sprintf("error creating %T fixture, %s", f, err))
	}
}

// Creatable is anything with a Create method, used by MustCreate.
type Creatable interface {
	Create(*pop.Connection) error
}

// CreateUserFixtures generates any number of user records for testing, all
// with FixturePassword as their password.
func CreateUserFixtures(tx *pop.Connection, n int) Fixtures {
	unique := domain.GetUUID().String()

	users := make(Users, n)
	for i := range users {
		iStr := strconv.Itoa(i)
		users[i].Email = fmt.Sprintf("user%d_%s@example.com", i, unique)
		users[i].FirstName = "first" + iStr
		users[i].LastName = "last" + iStr
		users[i].Role = api.UserRoleQuality
		if err := users[i].SetPassword(FixturePassword); err != nil {
			panic("error hashing fixture password, " + err.Error())
		}
		MustCreate(tx, &users[i])
	}

	return Fixtures{
		Users: users,
	}
}

// CreatePartnerFixtures generates any number of partner records for testing.
func CreatePartnerFixtures(tx *pop.Connection, n int) Fixtures {
	unique := domain.GetUUID().String()

	partners := make(Partners, n)
	for i := range partners {
		iStr := strconv.Itoa(i)
		partners[i].CompanyName = "Servisas " + iStr
		partners[i].ContactPerson = "contact" + iStr
		partners[i].Email = fmt.Sprintf("partner%d_%s@example.com", i, unique)
		partners[i].Phone = "+3706" + randStr(7)
		partners[i].City = "Kaunas"
		partners[i].Specialty = "maišytuvai"
		MustCreate(tx, &partners[i])
	}

	return Fixtures{
		Partners: partners,
	}
}

// CreateClaimFixtures generates any number of claim records for testing.
func CreateClaimFixtures(tx *pop.Connection, n int) Fixtures {
	unique := domain.GetUUID().String()

	claims := make(Claims, n)
	for i := range claims {
		iStr := strconv.Itoa(i)
		claims[i].CustomerName = "Jonas" + iStr
		claims[i].CustomerSurname = "Jonaitis"
		claims[i].CustomerEmail = fmt.Sprintf("customer%d_%s@example.com", i, unique)
		claims[i].CustomerPhone = "+3706" + randStr(7)
		claims[i].Street = "Laisvės al. " + iStr
		claims[i].City = "Kaunas"
		claims[i].PostalCode = "LT-44310"
		claims[i].Country = "LT"
		claims[i].ProductName = "Maišytuvas RUB-" + randStr(5)
		claims[i].Description = randStr(40)
		MustCreate(tx, &claims[i])
	}

	return Fixtures{
		Claims: claims,
	}
}

// DestroyAll removes all records between tests.
func DestroyAll() {
	var histories ClaimHistories
	destroyTable(&histories)

	var notifications Notifications
	destroyTable(&notifications)

	var claims Claims
	destroyTable(&claims)

	var partners Partners
	destroyTable(&partners)

	var users Users
	destroyTable(&users)
}

func destroyTable(i any) {
	if err := DB.All(i); err != nil {
		panic(err.Error())
	}
	if err := DB.Destroy(i); err != nil {
		panic(err.Error())
	}
}
