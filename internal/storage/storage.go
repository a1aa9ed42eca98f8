package storage

import (
	"errors"
	"sort"
	"sync"
	"time"

	"bayshore/server/internal/models"
)

var ErrDuplicateSlug = errors.New("blog post slug already exists")

const (
	DefaultCity          = "St. Petersburg"
	DefaultState         = "FL"
	DefaultListingStatus = "active"
	DefaultAuthor        = "Bayshore Realty Group"
	DefaultFeaturedImage = "https://images.bayshorerealty.com/blog/placeholder.jpg"
)

// Store is the in-memory source of truth for all entities. Gin serves
// requests on concurrent goroutines, so every operation takes the lock;
// nothing inside a store call blocks or yields.
type Store struct {
	mu sync.RWMutex

	properties      map[int64]*models.Property
	propertyOrder   []int64
	leads           map[int64]*models.Lead
	leadOrder       []int64
	posts           map[int64]*models.BlogPost
	postOrder       []int64
	neighborhoods   map[int64]*models.Neighborhood
	neighborhoodOrd []int64
	users           map[int64]*models.User

	nextPropertyID     int64
	nextLeadID         int64
	nextPostID         int64
	nextNeighborhoodID int64
	nextUserID         int64
}

// NewStore creates an empty store. Ids are per entity type, start at 1 and
// are never reused within a process lifetime.
func NewStore() *Store {
	return &Store{
		properties:    make(map[int64]*models.Property),
		leads:         make(map[int64]*models.Lead),
		posts:         make(map[int64]*models.BlogPost),
		neighborhoods: make(map[int64]*models.Neighborhood),
		users:         make(map[int64]*models.User),
	}
}

func (s *Store) CreateProperty(input models.PropertyInput) models.Property {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPropertyID++
	now := time.Now()
	p := &models.Property{
		ID:            s.nextPropertyID,
		Title:         input.Title,
		Description:   input.Description,
		Price:         input.Price,
		Street:        input.Street,
		City:          input.City,
		State:         input.State,
		Zip:           input.Zip,
		Bedrooms:      input.Bedrooms,
		Bathrooms:     input.Bathrooms,
		SquareFeet:    input.SquareFeet,
		PropertyType:  input.PropertyType,
		Images:        input.Images,
		Features:      input.Features,
		Neighborhood:  input.Neighborhood,
		YearBuilt:     input.YearBuilt,
		LotSize:       input.LotSize,
		IsWaterfront:  input.IsWaterfront,
		IsFeatured:    input.IsFeatured,
		ListingStatus: input.ListingStatus,
		MLSNumber:     input.MLSNumber,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if p.City == "" {
		p.City = DefaultCity
	}
	if p.State == "" {
		p.State = DefaultState
	}
	if p.ListingStatus == "" {
		p.ListingStatus = DefaultListingStatus
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}

	s.properties[p.ID] = p
	s.propertyOrder = append(s.propertyOrder, p.ID)
	return *p
}

// GetProperties returns every property matching the conjunction of the
// filter's non-nil predicates, in insertion order.
func (s *Store) GetProperties(filter models.PropertyFilter) []models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []models.Property{}
	for _, id := range s.propertyOrder {
		p := s.properties[id]
		if matchesFilter(p, filter) {
			result = append(result, *p)
		}
	}
	return result
}

func matchesFilter(p *models.Property, f models.PropertyFilter) bool {
	if f.PropertyType != nil && p.PropertyType != *f.PropertyType {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Bedrooms != nil && p.Bedrooms != *f.Bedrooms {
		return false
	}
	if f.Neighborhood != nil && p.Neighborhood != *f.Neighborhood {
		return false
	}
	if f.IsWaterfront != nil && p.IsWaterfront != *f.IsWaterfront {
		return false
	}
	return true
}

func (s *Store) GetFeaturedProperties() []models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []models.Property{}
	for _, id := range s.propertyOrder {
		if p := s.properties[id]; p.IsFeatured {
			result = append(result, *p)
		}
	}
	return result
}

func (s *Store) GetProperty(id int64) (models.Property, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.properties[id]
	if !ok {
		return models.Property{}, false
	}
	return *p, true
}

func (s *Store) CreateLead(input models.LeadInput) models.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextLeadID++
	l := &models.Lead{
		ID:               s.nextLeadID,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            input.Email,
		Phone:            input.Phone,
		Message:          input.Message,
		PropertyInterest: input.PropertyInterest,
		PriceRange:       input.PriceRange,
		LeadSource:       input.LeadSource,
		LeadType:         input.LeadType,
		IsContactedBack:  false,
		CreatedAt:        time.Now(),
	}
	s.leads[l.ID] = l
	s.leadOrder = append(s.leadOrder, l.ID)
	return *l
}

func (s *Store) GetLeads() []models.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []models.Lead{}
	for _, id := range s.leadOrder {
		result = append(result, *s.leads[id])
	}
	return result
}

// CreateBlogPost inserts a post. The slug must already be derived and is
// rejected with ErrDuplicateSlug when another post owns it.
func (s *Store) CreateBlogPost(input models.BlogPostInput) (models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.postOrder {
		if s.posts[id].Slug == input.Slug {
			return models.BlogPost{}, ErrDuplicateSlug
		}
	}

	s.nextPostID++
	now := time.Now()
	p := &models.BlogPost{
		ID:            s.nextPostID,
		Title:         input.Title,
		Slug:          input.Slug,
		Excerpt:       input.Excerpt,
		Content:       input.Content,
		Category:      input.Category,
		FeaturedImage: input.FeaturedImage,
		Author:        input.Author,
		PublishedAt:   now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if p.FeaturedImage == "" {
		p.FeaturedImage = DefaultFeaturedImage
	}
	if p.Author == "" {
		p.Author = DefaultAuthor
	}

	s.posts[p.ID] = p
	s.postOrder = append(s.postOrder, p.ID)
	return *p, nil
}

// GetBlogPosts returns posts newest first, optionally restricted to an exact
// category. Index 0 is always the most recent post.
func (s *Store) GetBlogPosts(category string) []models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []models.BlogPost{}
	for _, id := range s.postOrder {
		p := s.posts[id]
		if category != "" && p.Category != category {
			continue
		}
		result = append(result, *p)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PublishedAt.After(result[j].PublishedAt)
	})
	return result
}

func (s *Store) GetBlogPost(slug string) (models.BlogPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.postOrder {
		if p := s.posts[id]; p.Slug == slug {
			return *p, true
		}
	}
	return models.BlogPost{}, false
}

// UpdateBlogPost merges non-nil fields over the stored post. PublishedAt and
// id never change; UpdatedAt always does.
func (s *Store) UpdateBlogPost(slug string, update models.BlogPostUpdate) (models.BlogPost, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.postOrder {
		p := s.posts[id]
		if p.Slug != slug {
			continue
		}
		if update.Title != nil {
			p.Title = *update.Title
		}
		if update.Excerpt != nil {
			p.Excerpt = *update.Excerpt
		}
		if update.Content != nil {
			p.Content = *update.Content
		}
		if update.Category != nil {
			p.Category = *update.Category
		}
		if update.FeaturedImage != nil {
			p.FeaturedImage = *update.FeaturedImage
		}
		if update.Author != nil {
			p.Author = *update.Author
		}
		p.UpdatedAt = time.Now()
		return *p, true
	}
	return models.BlogPost{}, false
}

// DeleteBlogPost removes the post with the given slug. Repeated calls are
// idempotent: true the first time, false once it is gone.
func (s *Store) DeleteBlogPost(slug string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.postOrder {
		if s.posts[id].Slug == slug {
			delete(s.posts, id)
			s.postOrder = append(s.postOrder[:i], s.postOrder[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) CreateNeighborhood(input models.NeighborhoodInput) models.Neighborhood {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextNeighborhoodID++
	n := &models.Neighborhood{
		ID:                s.nextNeighborhoodID,
		Name:              input.Name,
		Description:       input.Description,
		Image:             input.Image,
		AveragePriceRange: input.AveragePriceRange,
		Highlights:        input.Highlights,
		CreatedAt:         time.Now(),
	}
	if n.Highlights == nil {
		n.Highlights = []string{}
	}
	s.neighborhoods[n.ID] = n
	s.neighborhoodOrd = append(s.neighborhoodOrd, n.ID)
	return *n
}

func (s *Store) GetNeighborhoods() []models.Neighborhood {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []models.Neighborhood{}
	for _, id := range s.neighborhoodOrd {
		result = append(result, *s.neighborhoods[id])
	}
	return result
}

func (s *Store) GetNeighborhood(id int64) (models.Neighborhood, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.neighborhoods[id]
	if !ok {
		return models.Neighborhood{}, false
	}
	return *n, true
}

func (s *Store) GetNeighborhoodByName(name string) (models.Neighborhood, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.neighborhoodOrd {
		if n := s.neighborhoods[id]; n.Name == name {
			return *n, true
		}
	}
	return models.Neighborhood{}, false
}

func (s *Store) CreateUser(username, password string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUserID++
	u := &models.User{
		ID:       s.nextUserID,
		Username: username,
		Password: password,
	}
	s.users[u.ID] = u
	return *u
}

func (s *Store) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return *u, true
		}
	}
	return models.User{}, false
}
