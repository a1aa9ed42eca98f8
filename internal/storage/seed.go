package storage

import (
	"time"

	"bayshore/server/internal/models"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

// Seed fills the store with the launch content set. The store is process
// memory only, so this runs on every start.
func (s *Store) Seed() {
	s.CreateNeighborhood(models.NeighborhoodInput{
		Name:              "Old Northeast",
		Description:       "Historic brick streets, hex-block sidewalks and 1920s bungalows minutes from the waterfront parks.",
		Image:             "https://images.bayshorerealty.com/neighborhoods/old-northeast.jpg",
		AveragePriceRange: "$650K - $2.5M",
		Highlights:        []string{"Historic district", "Waterfront parks", "Walkable to downtown"},
	})
	s.CreateNeighborhood(models.NeighborhoodInput{
		Name:              "Snell Isle",
		Description:       "Gated waterfront estates and Mediterranean revival homes on a private island north of downtown.",
		Image:             "https://images.bayshorerealty.com/neighborhoods/snell-isle.jpg",
		AveragePriceRange: "$900K - $6M",
		Highlights:        []string{"Deep-water docks", "Vinoy Golf Club", "Island living"},
	})
	s.CreateNeighborhood(models.NeighborhoodInput{
		Name:              "Kenwood",
		Description:       "Craftsman bungalows and an artist community feel, just west of the Grand Central District.",
		Image:             "https://images.bayshorerealty.com/neighborhoods/kenwood.jpg",
		AveragePriceRange: "$400K - $750K",
		Highlights:        []string{"Bungalow courts", "Art walks", "Central location"},
	})
	s.CreateNeighborhood(models.NeighborhoodInput{
		Name:              "Shore Acres",
		Description:       "Canal-front family homes with private docks and quick boat access to Tampa Bay.",
		Image:             "https://images.bayshorerealty.com/neighborhoods/shore-acres.jpg",
		AveragePriceRange: "$500K - $1.8M",
		Highlights:        []string{"Canal access", "Family friendly", "Boating community"},
	})

	s.CreateProperty(models.PropertyInput{
		Title:        "Waterfront Mediterranean Estate",
		Description:  "Grand 1926 Mediterranean revival on open water with a private dock, chef's kitchen and resort pool.",
		Price:        3250000,
		Street:       "255 Brightwaters Blvd NE",
		Zip:          "33704",
		Bedrooms:     5,
		Bathrooms:    "4.5",
		SquareFeet:   4850,
		PropertyType: "Single Family",
		Images: []string{
			"https://images.bayshorerealty.com/listings/brightwaters-1.jpg",
			"https://images.bayshorerealty.com/listings/brightwaters-2.jpg",
		},
		Features:     []string{"Private dock", "Pool", "Chef's kitchen", "Open water views"},
		Neighborhood: "Snell Isle",
		YearBuilt:    intPtr(1926),
		LotSize:      strPtr("0.42"),
		IsWaterfront: true,
		IsFeatured:   true,
		MLSNumber:    strPtr("U8243117"),
	})
	s.CreateProperty(models.PropertyInput{
		Title:        "Restored Craftsman Bungalow",
		Description:  "Fully restored 1925 bungalow with original heart-pine floors, new roof and a detached studio.",
		Price:        612000,
		Street:       "2546 5th Ave N",
		Zip:          "33713",
		Bedrooms:     3,
		Bathrooms:    "2",
		SquareFeet:   1680,
		PropertyType: "Single Family",
		Images:       []string{"https://images.bayshorerealty.com/listings/kenwood-bungalow-1.jpg"},
		Features:     []string{"Original hardwood", "Detached studio", "Front porch"},
		Neighborhood: "Kenwood",
		YearBuilt:    intPtr(1925),
		LotSize:      strPtr("0.15"),
	})
	s.CreateProperty(models.PropertyInput{
		Title:        "Downtown Luxury Condo",
		Description:  "Corner residence on the 14th floor with floor-to-ceiling glass and bay views from every room.",
		Price:        1150000,
		Street:       "100 1st Ave N #1402",
		Zip:          "33701",
		Bedrooms:     2,
		Bathrooms:    "2.5",
		SquareFeet:   1890,
		PropertyType: "Condo",
		Images:       []string{"https://images.bayshorerealty.com/listings/downtown-condo-1.jpg"},
		Features:     []string{"Bay views", "Concierge", "Two parking spaces"},
		Neighborhood: "Old Northeast",
		YearBuilt:    intPtr(2019),
		IsFeatured:   true,
	})
	s.CreateProperty(models.PropertyInput{
		Title:        "Canal-Front Family Home",
		Description:  "Updated four bedroom on a sailboat-water canal with a new seawall, dock and 10,000 lb lift.",
		Price:        875000,
		Street:       "1430 Bayou Grande Blvd NE",
		Zip:          "33703",
		Bedrooms:     4,
		Bathrooms:    "3",
		SquareFeet:   2410,
		PropertyType: "Single Family",
		Images:       []string{"https://images.bayshorerealty.com/listings/shore-acres-1.jpg"},
		Features:     []string{"New seawall", "Boat lift", "Split floor plan"},
		Neighborhood: "Shore Acres",
		YearBuilt:    intPtr(1968),
		LotSize:      strPtr("0.21"),
		IsWaterfront: true,
	})
	s.CreateProperty(models.PropertyInput{
		Title:        "Historic District Townhouse",
		Description:  "Three-story townhouse with a rooftop terrace two blocks from Beach Drive restaurants.",
		Price:        739000,
		Street:       "540 4th Ave NE",
		Zip:          "33701",
		Bedrooms:     3,
		Bathrooms:    "3.5",
		SquareFeet:   2150,
		PropertyType: "Townhouse",
		Images:       []string{"https://images.bayshorerealty.com/listings/townhouse-1.jpg"},
		Features:     []string{"Rooftop terrace", "Two-car garage"},
		Neighborhood: "Old Northeast",
		YearBuilt:    intPtr(2016),
	})
	s.CreateProperty(models.PropertyInput{
		Title:        "Starter Bungalow Near Grand Central",
		Description:  "Move-in ready two bedroom with a fenced yard and alley parking in the heart of the arts district.",
		Price:        425000,
		Street:       "2217 1st Ave S",
		Zip:          "33712",
		Bedrooms:     2,
		Bathrooms:    "1",
		SquareFeet:   1040,
		PropertyType: "Single Family",
		Images:       []string{"https://images.bayshorerealty.com/listings/grand-central-1.jpg"},
		Features:     []string{"Fenced yard", "New HVAC"},
		Neighborhood: "Kenwood",
		YearBuilt:    intPtr(1948),
		LotSize:      strPtr("0.12"),
	})

	seedPosts := []struct {
		input models.BlogPostInput
		age   time.Duration
	}{
		{
			input: models.BlogPostInput{
				Title:    "2025 Waterfront Market Report for Tampa Bay",
				Slug:     "2025-waterfront-market-report",
				Excerpt:  "Inventory, pricing and days-on-market trends for waterfront homes across the bay area this year.",
				Content:  "Waterfront inventory across Tampa Bay tightened again this quarter, with Snell Isle and Shore Acres leading absorption. Median waterfront sale prices rose 6.2% year over year while days on market fell to 31. Buyers continue to pay premiums for protected deep-water dockage and post-2002 seawalls, and flood insurance costs remain the single biggest negotiation point in contracts we closed this spring.",
				Category: "Market Reports",
			},
			age: 21 * 24 * time.Hour,
		},
		{
			input: models.BlogPostInput{
				Title:    "How to Prepare Your Home for a Spring Listing",
				Slug:     "prepare-home-spring-listing",
				Excerpt:  "A practical pre-listing checklist our agents walk through with every seller before photos are taken.",
				Content:  "Before a single photo is taken we walk every seller through the same checklist: refresh mulch and trim sight lines at the entry, service the HVAC and keep the receipt, repaint any room that still has an accent wall, and clear kitchen counters down to three items. Homes that complete the full checklist have sold nine days faster than the neighborhood average over the last two years of our closings.",
				Category: "Selling",
			},
			age: 45 * 24 * time.Hour,
		},
		{
			input: models.BlogPostInput{
				Title:    "Guide to Flood Zones and Insurance in Pinellas County",
				Slug:     "flood-zones-insurance-guide",
				Excerpt:  "What AE, VE and X zones mean for your purchase, and how elevation certificates change your premium.",
				Content:  "Every coastal buyer eventually asks the same question: what does this flood zone actually cost me? AE and VE zones require coverage on financed purchases, and premiums swing widely with the home's elevation certificate. We break down how base flood elevation is measured, when a letter of map amendment can remove the requirement entirely, and why a fifty-year-old slab home can be cheaper to insure than new construction across the street.",
				Category: "Buying",
			},
			age: 70 * 24 * time.Hour,
		},
	}
	for _, sp := range seedPosts {
		post, err := s.CreateBlogPost(sp.input)
		if err != nil {
			continue
		}
		// Backdate seeded posts so the blog index has a realistic timeline.
		s.mu.Lock()
		stored := s.posts[post.ID]
		stored.PublishedAt = stored.PublishedAt.Add(-sp.age)
		stored.CreatedAt = stored.PublishedAt
		stored.UpdatedAt = stored.PublishedAt
		s.mu.Unlock()
	}
}
