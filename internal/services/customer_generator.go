package services

import (
	"math/rand"
	"strings"
	"time"

	"corecrm/internal/models"

	"github.com/brianvoe/gofakeit/v7"
)

type customerGenerator struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
}

const (
	creationWindowDays = 180
	hoursInDay         = 24
	notesProbability   = 0.4
)

// statusWeights skews generated data towards active customers, roughly
// matching a real book of business.
var statusWeights = []struct {
	status models.Status
	weight int
}{
	{models.StatusActive, 45},
	{models.StatusProspect, 30},
	{models.StatusInactive, 20},
	{models.StatusBlocked, 5},
}

// NewCustomerGenerator creates a new customer generator
func NewCustomerGenerator() CustomerGeneratorInterface {
	seed := time.Now().UnixNano()
	return &customerGenerator{
		faker: gofakeit.New(uint64(seed)),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// GenerateCustomer produces one realistic customer with a weighted status and
// a creation time spread over the last few months.
func (g *customerGenerator) GenerateCustomer() *models.Customer {
	name := g.faker.Name()
	createdAt := g.generateCreatedAt()

	customer := &models.Customer{
		Name:      name,
		Email:     g.generateEmail(name),
		Phone:     g.faker.Phone(),
		Status:    g.generateStatus(),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	if g.rng.Float64() < notesProbability {
		customer.Notes = g.faker.Sentence(8)
	}

	return customer
}

// GenerateCustomers produces count customers
func (g *customerGenerator) GenerateCustomers(count int) []*models.Customer {
	customers := make([]*models.Customer, 0, count)
	for i := 0; i < count; i++ {
		customers = append(customers, g.GenerateCustomer())
	}
	return customers
}

func (g *customerGenerator) generateStatus() models.Status {
	totalWeight := 0
	for _, sw := range statusWeights {
		totalWeight += sw.weight
	}

	roll := g.rng.Intn(totalWeight)
	for _, sw := range statusWeights {
		roll -= sw.weight
		if roll < 0 {
			return sw.status
		}
	}

	return models.StatusProspect
}

func (g *customerGenerator) generateEmail(name string) string {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	local = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, local)

	return local + "@" + g.faker.DomainName()
}

func (g *customerGenerator) generateCreatedAt() time.Time {
	offset := time.Duration(g.rng.Int63n(int64(creationWindowDays) * int64(hoursInDay))) * time.Hour
	jitter := time.Duration(g.rng.Intn(3600)) * time.Second
	return time.Now().Add(-offset - jitter)
}
