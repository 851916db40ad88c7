// Package seed loads a demo dataset for local development. The location tree
// and vendor roster are fixed; agents, customers, and orders are generated
// with faker. Everything goes through the command layer so the same
// invariants hold as for API traffic.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/core/ports"

	"github.com/jaswdr/faker"
)

var fake = faker.New()

type locationFixture struct {
	id       string
	name     string
	locType  location.Type
	parent   string
	lat, lng float64
}

var locationFixtures = []locationFixture{
	{id: "us", name: "United States", locType: location.TypeCountry, lat: 37.0902, lng: -95.7129},
	{id: "ca", name: "Canada", locType: location.TypeCountry, lat: 56.1304, lng: -106.3468},
	{id: "uk", name: "United Kingdom", locType: location.TypeCountry, lat: 55.3781, lng: -3.4360},
	{id: "au", name: "Australia", locType: location.TypeCountry, lat: -25.2744, lng: 133.7751},
	{id: "ca-on", name: "Ontario", locType: location.TypeState, parent: "ca", lat: 51.2538, lng: -85.3232},
	{id: "us-ca", name: "California", locType: location.TypeState, parent: "us", lat: 36.7783, lng: -119.4179},
	{id: "us-ny", name: "New York", locType: location.TypeState, parent: "us", lat: 40.7128, lng: -74.0060},
	{id: "us-ca-sf", name: "San Francisco", locType: location.TypeCity, parent: "us-ca", lat: 37.7749, lng: -122.4194},
	{id: "us-ca-la", name: "Los Angeles", locType: location.TypeCity, parent: "us-ca", lat: 34.0522, lng: -118.2437},
	{id: "us-ny-nyc", name: "New York City", locType: location.TypeCity, parent: "us-ny", lat: 40.7128, lng: -74.0060},
	{id: "us-ny-nyc-manhattan", name: "Manhattan", locType: location.TypeDistrict, parent: "us-ny-nyc", lat: 40.7831, lng: -73.9712},
	{id: "us-ny-nyc-brooklyn", name: "Brooklyn", locType: location.TypeDistrict, parent: "us-ny-nyc", lat: 40.6782, lng: -73.9442},
	{id: "us-ca-sf-downtown", name: "Downtown SF", locType: location.TypeZone, parent: "us-ca-sf", lat: 37.7749, lng: -122.4194},
}

type vendorFixture struct {
	name           string
	locations      []string
	commissionRate float64
	contact        vendor.Contact
}

var vendorFixtures = []vendorFixture{
	{
		name:           "Artisan Crafts",
		locations:      []string{"us-ca-sf", "us-ca-la"},
		commissionRate: 8,
		contact: vendor.Contact{
			Description: "Artisan Crafts specializes in handmade products crafted by local artisans across California.",
			Email:       "info@artisancrafts.com",
			Phone:       "+1 (415) 555-1234",
			Website:     "https://artisancrafts.com",
		},
	},
	{
		name:           "Tech Haven",
		locations:      []string{"us-ny-nyc", "ca-on"},
		commissionRate: 12,
		contact: vendor.Contact{
			Description: "Tech Haven offers the latest electronics and gadgets for tech enthusiasts.",
			Email:       "sales@techhaven.com",
			Phone:       "+1 (212) 555-5678",
			Website:     "https://techhaven.com",
		},
	},
	{
		name:           "Global Goods",
		locations:      []string{"us", "ca", "uk", "au"},
		commissionRate: 10,
		contact: vendor.Contact{
			Description: "Global Goods sources unique products from around the world.",
			Email:       "hello@globalgoods.com",
			Phone:       "+1 (800) 555-9012",
			Website:     "https://globalgoods.com",
		},
	},
	{
		name:           "Urban Essentials",
		locations:      []string{"us-ca-sf-downtown", "us-ny-nyc-manhattan"},
		commissionRate: 9.5,
		contact: vendor.Contact{
			Description: "Urban Essentials provides stylish and functional products for modern city living.",
			Email:       "contact@urbanessentials.com",
			Phone:       "+1 (628) 555-3456",
			Website:     "https://urbanessentials.com",
		},
	},
	{
		name:           "Eco Wares",
		locations:      []string{"us-ca", "ca"},
		commissionRate: 7.5,
		contact: vendor.Contact{
			Description: "Eco Wares specializes in sustainable and eco-friendly products.",
			Email:       "support@ecowares.com",
			Phone:       "+1 (510) 555-7890",
			Website:     "https://ecowares.com",
		},
	},
}

var productCatalog = []struct {
	id   string
	name string
}{
	{"sku-001", "Sourdough Loaf"},
	{"sku-002", "Orange Juice"},
	{"sku-003", "Oat Milk"},
	{"sku-004", "Ceramic Mug"},
	{"sku-005", "Bamboo Cutlery Set"},
	{"sku-006", "Wireless Earbuds"},
	{"sku-007", "Desk Lamp"},
	{"sku-008", "Wool Scarf"},
	{"sku-009", "Olive Oil"},
	{"sku-010", "Green Tea"},
}

var paymentMethods = []string{"card", "cash", "wallet"}

const (
	agentCount          = 6
	ordersPerVendor     = 4
	advancedOrdersShare = 2 // every n-th order gets moved past "new"
)

// Seeder loads the demo dataset through the command layer.
type Seeder struct {
	createLocation commands.CreateLocationCommandHandler
	createVendor   commands.CreateVendorCommandHandler
	createOrder    commands.CreateOrderCommandHandler
	transition     commands.TransitionOrderStatusCommandHandler
	createAgent    commands.CreateAgentCommandHandler
	refreshStats   commands.RefreshLocationStatsCommandHandler
	logger         *slog.Logger
}

// NewSeeder creates a seeder over the given store factory.
func NewSeeder(factory ports.UnitOfWorkFactory, logger *slog.Logger) *Seeder {
	return &Seeder{
		createLocation: commands.NewCreateLocationCommandHandler(commands.NewLocationUoWFactory(factory)),
		createVendor:   commands.NewCreateVendorCommandHandler(commands.NewVendorUoWFactory(factory)),
		createOrder:    commands.NewCreateOrderCommandHandler(commands.NewOrderUoWFactory(factory)),
		transition:     commands.NewTransitionOrderStatusCommandHandler(commands.NewOrderUoWFactory(factory)),
		createAgent:    commands.NewCreateAgentCommandHandler(commands.NewAgentUoWFactory(factory)),
		refreshStats:   commands.NewRefreshLocationStatsCommandHandler(commands.NewStatsUoWFactory(factory)),
		logger:         logger.With("component", "seed"),
	}
}

// Run loads the full demo dataset. Safe to call once on an empty store.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedLocations(ctx); err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}

	vendorIDs, err := s.seedVendors(ctx)
	if err != nil {
		return fmt.Errorf("seed vendors: %w", err)
	}

	if err := s.seedAgents(ctx); err != nil {
		return fmt.Errorf("seed agents: %w", err)
	}

	orders, err := s.seedOrders(ctx, vendorIDs)
	if err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}

	if err := s.refreshStats.Handle(ctx, commands.NewRefreshLocationStatsCommand()); err != nil {
		return fmt.Errorf("refresh stats: %w", err)
	}

	s.logger.InfoContext(ctx, "Demo dataset loaded",
		"locations", len(locationFixtures),
		"vendors", len(vendorIDs),
		"agents", agentCount,
		"orders", orders)
	return nil
}

func (s *Seeder) seedLocations(ctx context.Context) error {
	for _, fixture := range locationFixtures {
		var parentID *location.ID
		if fixture.parent != "" {
			id := location.ID(fixture.parent)
			parentID = &id
		}

		coordinates, err := location.NewCoordinates(fixture.lat, fixture.lng)
		if err != nil {
			return err
		}

		cmd, err := commands.NewCreateLocationCommand(
			location.ID(fixture.id), fixture.name, fixture.locType, parentID, &coordinates)
		if err != nil {
			return err
		}
		if err := s.createLocation.Handle(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedVendors(ctx context.Context) (map[string]kernel.UUID, error) {
	ids := make(map[string]kernel.UUID, len(vendorFixtures))
	for _, fixture := range vendorFixtures {
		locationIDs := make([]location.ID, 0, len(fixture.locations))
		for _, id := range fixture.locations {
			locationIDs = append(locationIDs, location.ID(id))
		}

		cmd, err := commands.NewCreateVendorCommand(
			fixture.name, locationIDs, fixture.commissionRate, fixture.contact)
		if err != nil {
			return nil, err
		}
		if err := s.createVendor.Handle(ctx, cmd); err != nil {
			return nil, err
		}
		ids[fixture.name] = cmd.VendorID()
	}
	return ids, nil
}

func (s *Seeder) seedAgents(ctx context.Context) error {
	zones := []location.ID{"us-ca-sf", "us-ca-la", "us-ny-nyc", "us-ca-sf-downtown", "us-ny-nyc-brooklyn"}

	for i := 0; i < agentCount; i++ {
		zone := zones[i%len(zones)]
		cmd, err := commands.NewCreateAgentCommand(
			fake.Person().Name(),
			fake.Phone().Number(),
			[]location.ID{zone},
		)
		if err != nil {
			return err
		}
		if err := s.createAgent.Handle(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedOrders(ctx context.Context, vendorIDs map[string]kernel.UUID) (int, error) {
	created := 0
	for _, fixture := range vendorFixtures {
		vendorID := vendorIDs[fixture.name]

		for i := 0; i < ordersPerVendor; i++ {
			orderLocation := location.ID(fixture.locations[i%len(fixture.locations)])

			itemCount := fake.IntBetween(1, 3)
			lineItems := make([]order.LineItem, 0, itemCount)
			for j := 0; j < itemCount; j++ {
				product := productCatalog[fake.IntBetween(0, len(productCatalog)-1)]
				item, err := order.NewLineItem(
					product.id, product.name,
					fake.Float64(2, 2, 30),
					fake.IntBetween(1, 4),
				)
				if err != nil {
					return created, err
				}
				lineItems = append(lineItems, item)
			}

			cmd, err := commands.NewCreateOrderCommand(
				kernel.NewUUID(),
				fake.Person().Name(),
				vendorID,
				orderLocation,
				lineItems,
				paymentMethods[fake.IntBetween(0, len(paymentMethods)-1)],
				fake.Address().StreetAddress(),
			)
			if err != nil {
				return created, err
			}
			if err := s.createOrder.Handle(ctx, cmd); err != nil {
				return created, err
			}
			created++

			if i%advancedOrdersShare == 0 {
				if err := s.advance(ctx, cmd.OrderID(), order.StatusConfirmed); err != nil {
					return created, err
				}
			}
			if i%(advancedOrdersShare*2) == 0 {
				if err := s.advance(ctx, cmd.OrderID(), order.StatusProcessing); err != nil {
					return created, err
				}
			}
		}
	}
	return created, nil
}

func (s *Seeder) advance(ctx context.Context, orderID kernel.UUID, status order.Status) error {
	cmd, err := commands.NewTransitionOrderStatusCommand(orderID, status, "seed", "")
	if err != nil {
		return err
	}
	return s.transition.Handle(ctx, cmd)
}
