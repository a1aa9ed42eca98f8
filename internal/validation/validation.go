package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"bayshore/server/internal/models"
)

// FieldError pairs a machine-stable field identifier with a human-readable
// message. Responses carry every failing field, not just the first.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z \-']+$`)
	phoneRe = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)
	slugRe  = regexp.MustCompile(`[^a-z0-9]+`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return nameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("intl_phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	return v
}

// check validates a single value against a tag expression and translates the
// first failing tag into the given per-tag message table.
func check(value string, tags string, field string, messages map[string]string) *FieldError {
	err := validate.Var(value, tags)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return &FieldError{Field: field, Message: "Invalid value"}
	}
	msg, ok := messages[verrs[0].Tag()]
	if !ok {
		msg = "Invalid value"
	}
	return &FieldError{Field: field, Message: msg}
}

func nameMessages(label string) map[string]string {
	return map[string]string{
		"required":    label + " is required",
		"max":         label + " must be between 1 and 50 characters",
		"person_name": label + " may only contain letters, spaces, hyphens, and apostrophes",
	}
}

// NormalizeLead trims every field and canonicalizes the email before
// validation and storage.
func NormalizeLead(in *models.LeadInput) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Message = strings.TrimSpace(in.Message)
	in.PropertyInterest = strings.TrimSpace(in.PropertyInterest)
	in.PriceRange = strings.TrimSpace(in.PriceRange)
}

// ValidateLead applies the full lead field rules. The input must already be
// normalized.
func ValidateLead(in *models.LeadInput) []FieldError {
	return validateLead(in, true)
}

// ValidateNewsletter relaxes the name requirement: newsletter sign-ups only
// need an email, but names are still checked when present.
func ValidateNewsletter(in *models.LeadInput) []FieldError {
	return validateLead(in, false)
}

func validateLead(in *models.LeadInput, requireName bool) []FieldError {
	var errs []FieldError

	nameTags := "required,min=1,max=50,person_name"
	if !requireName {
		nameTags = "omitempty,max=50,person_name"
	}
	if fe := check(in.FirstName, nameTags, "firstName", nameMessages("First name")); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := check(in.LastName, nameTags, "lastName", nameMessages("Last name")); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := check(in.Email, "required,email", "email", map[string]string{
		"required": "Email is required",
		"email":    "Please provide a valid email address",
	}); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := check(in.Phone, "omitempty,intl_phone", "phone", map[string]string{
		"intl_phone": "Please provide a valid phone number",
	}); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := check(in.Message, "omitempty,max=1000", "message", map[string]string{
		"max": "Message must be 1000 characters or less",
	}); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := check(in.PropertyInterest, "omitempty,max=200", "propertyInterest", map[string]string{
		"max": "Property interest must be 200 characters or less",
	}); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := check(in.PriceRange, "omitempty,max=100", "priceRange", map[string]string{
		"max": "Price range must be 100 characters or less",
	}); fe != nil {
		errs = append(errs, *fe)
	}
	return errs
}

// NormalizeBlogPost trims text fields and derives the slug from the title
// when the client did not supply one.
func NormalizeBlogPost(in *models.BlogPostInput) {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	in.Excerpt = strings.TrimSpace(in.Excerpt)
	in.Content = strings.TrimSpace(in.Content)
	in.Category = strings.TrimSpace(in.Category)
	in.FeaturedImage = strings.TrimSpace(in.FeaturedImage)
	in.Author = strings.TrimSpace(in.Author)
	if in.Slug == "" {
		in.Slug = Slugify(in.Title)
	}
}

func ValidateBlogPost(in *models.BlogPostInput) []FieldError {
	var errs []FieldError
	if fe := check(in.Title, "required,min=5", "title", map[string]string{
		"required": "Title is required",
		"min":      "Title must be at least 5 characters",
	}); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := check(in.Content, "required,min=50", "content", map[string]string{
		"required": "Content is required",
		"min":      "Content must be at least 50 characters",
	}); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := check(in.Category, "required", "category", map[string]string{
		"required": "Category is required",
	}); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := check(in.Excerpt, "required,min=20", "excerpt", map[string]string{
		"required": "Excerpt is required",
		"min":      "Excerpt must be at least 20 characters",
	}); fe != nil {
		errs = append(errs, *fe)
	}
	return errs
}

// ValidateBlogPostUpdate checks only the fields present in the partial
// update; absent fields keep their stored values.
func ValidateBlogPostUpdate(in *models.BlogPostUpdate) []FieldError {
	var errs []FieldError
	if in.Title != nil {
		*in.Title = strings.TrimSpace(*in.Title)
		if fe := check(*in.Title, "min=5", "title", map[string]string{
			"min": "Title must be at least 5 characters",
		}); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if in.Content != nil {
		*in.Content = strings.TrimSpace(*in.Content)
		if fe := check(*in.Content, "min=50", "content", map[string]string{
			"min": "Content must be at least 50 characters",
		}); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if in.Category != nil {
		*in.Category = strings.TrimSpace(*in.Category)
		if fe := check(*in.Category, "required", "category", map[string]string{
			"required": "Category cannot be empty",
		}); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if in.Excerpt != nil {
		*in.Excerpt = strings.TrimSpace(*in.Excerpt)
		if fe := check(*in.Excerpt, "min=20", "excerpt", map[string]string{
			"min": "Excerpt must be at least 20 characters",
		}); fe != nil {
			errs = append(errs, *fe)
		}
	}
	return errs
}

// Slugify lowercases the title, collapses every non-alphanumeric run into a
// single hyphen and strips leading and trailing hyphens.
func Slugify(title string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
