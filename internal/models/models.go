package models

import "time"

// Property is a listed home. Images are ordered, the first one is the hero
// image shown on listing cards.
type Property struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         int       `json:"price"`
	Street        string    `json:"street"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Zip           string    `json:"zip"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     string    `json:"bathrooms"`
	SquareFeet    int       `json:"squareFeet"`
	PropertyType  string    `json:"propertyType"`
	Images        []string  `json:"images"`
	Features      []string  `json:"features"`
	Neighborhood  string    `json:"neighborhood"`
	YearBuilt     *int      `json:"yearBuilt"`
	LotSize       *string   `json:"lotSize"`
	IsWaterfront  bool      `json:"isWaterfront"`
	IsFeatured    bool      `json:"isFeatured"`
	ListingStatus string    `json:"listingStatus"`
	MLSNumber     *string   `json:"mlsNumber"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// PropertyInput carries the fields for a new listing. Zero values for City,
// State and ListingStatus are replaced with defaults at insert time.
type PropertyInput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         int      `json:"price"`
	Street        string   `json:"street"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Zip           string   `json:"zip"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     string   `json:"bathrooms"`
	SquareFeet    int      `json:"squareFeet"`
	PropertyType  string   `json:"propertyType"`
	Images        []string `json:"images"`
	Features      []string `json:"features"`
	Neighborhood  string   `json:"neighborhood"`
	YearBuilt     *int     `json:"yearBuilt"`
	LotSize       *string  `json:"lotSize"`
	IsWaterfront  bool     `json:"isWaterfront"`
	IsFeatured    bool     `json:"isFeatured"`
	ListingStatus string   `json:"listingStatus"`
	MLSNumber     *string  `json:"mlsNumber"`
}

// PropertyFilter is a conjunction of optional predicates. A nil field means
// no constraint on that dimension.
type PropertyFilter struct {
	PropertyType *string
	MinPrice     *int
	MaxPrice     *int
	Bedrooms     *int
	Neighborhood *string
	IsWaterfront *bool
}

// Lead is a captured prospect contact. Leads are append-only through the API;
// IsContactedBack is flipped by back-office tooling.
type Lead struct {
	ID               int64     `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Message          string    `json:"message,omitempty"`
	PropertyInterest string    `json:"propertyInterest,omitempty"`
	PriceRange       string    `json:"priceRange,omitempty"`
	LeadSource       string    `json:"leadSource"`
	LeadType         string    `json:"leadType"`
	IsContactedBack  bool      `json:"isContactedBack"`
	CreatedAt        time.Time `json:"createdAt"`
}

// LeadInput is the client-supplied portion of a lead. LeadSource and LeadType
// are stamped by the receiving endpoint, never taken from the client.
type LeadInput struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Message          string `json:"message"`
	PropertyInterest string `json:"propertyInterest"`
	PriceRange       string `json:"priceRange"`
	LeadSource       string `json:"-"`
	LeadType         string `json:"-"`
}

// BlogPost is identified externally by its slug; the numeric id is internal.
type BlogPost struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	FeaturedImage string    `json:"featuredImage"`
	Author        string    `json:"author"`
	PublishedAt   time.Time `json:"publishedAt"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type BlogPostInput struct {
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content"`
	Category      string `json:"category"`
	FeaturedImage string `json:"featuredImage"`
	Author        string `json:"author"`
}

// BlogPostUpdate merges non-nil fields over an existing post. The slug is the
// post's identity and cannot be changed after creation.
type BlogPostUpdate struct {
	Title         *string `json:"title"`
	Excerpt       *string `json:"excerpt"`
	Content       *string `json:"content"`
	Category      *string `json:"category"`
	FeaturedImage *string `json:"featuredImage"`
	Author        *string `json:"author"`
}

type Neighborhood struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Image             string    `json:"image"`
	AveragePriceRange string    `json:"averagePriceRange"`
	Highlights        []string  `json:"highlights"`
	CreatedAt         time.Time `json:"createdAt"`
}

type NeighborhoodInput struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Image             string   `json:"image"`
	AveragePriceRange string   `json:"averagePriceRange"`
	Highlights        []string `json:"highlights"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
