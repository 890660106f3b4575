package media

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/iamahmadmhd/cinemora/internal/models"
)

// SortOrder is a listing sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sort is a sort criterion: a field from the fixed allow-list plus a
// direction. A direction without a field is meaningless and never serialized.
type Sort struct {
	Field string    `json:"field,omitempty"`
	Order SortOrder `json:"order,omitempty"`
}

// sortFields is the allow-list of sortable fields, in the upstream's
// vocabulary.
var sortFields = map[string]bool{
	"original_title":       true,
	"popularity":           true,
	"primary_release_date": true,
	"title":                true,
	"vote_average":         true,
}

// Criteria is the combined filter, sort and pagination state driving one
// listing fetch. The zero value means "no filters at all".
type Criteria struct {
	Genres      []int  `json:"genres,omitempty"`
	ReleaseYear string `json:"releaseYear,omitempty"`
	Language    string `json:"language,omitempty"`
	Country     string `json:"country,omitempty"`
	Keywords    string `json:"keywords,omitempty"`
	Sort        Sort   `json:"sort,omitzero"`
	Page        int    `json:"page,omitempty"`
}

// Patch is a partial criteria update. Nil fields leave the current value
// untouched; non-nil empty values clear the criterion, so a merged result
// never retains stale empty keys.
type Patch struct {
	Genres      *[]int
	ReleaseYear *string
	Language    *string
	Country     *string
	Keywords    *string
	Sort        *Sort
	Page        *int
}

// Apply merges a patch into the criteria. Any change to a non-page criterion
// resets the page to 1; a page-only patch leaves the other criteria as they
// are. An explicit page in the same patch wins over the reset.
func (c Criteria) Apply(p Patch) Criteria {
	next := c
	touched := false
	if p.Genres != nil {
		next.Genres = slices.Clone(*p.Genres)
		touched = true
	}
	if p.ReleaseYear != nil {
		next.ReleaseYear = *p.ReleaseYear
		touched = true
	}
	if p.Language != nil {
		next.Language = *p.Language
		touched = true
	}
	if p.Country != nil {
		next.Country = *p.Country
		touched = true
	}
	if p.Keywords != nil {
		next.Keywords = *p.Keywords
		touched = true
	}
	if p.Sort != nil {
		next.Sort = *p.Sort
		touched = true
	}
	if touched {
		next.Page = 1
	}
	if p.Page != nil {
		next.Page = *p.Page
	}
	return next
}

// Clear resets to the fully-empty criteria: the resulting fetch carries no
// filter parameters at all.
func (c Criteria) Clear() Criteria {
	return Criteria{}
}

// QueryParams serializes the criteria for the catalog fetch. Empty criteria
// are omitted rather than sent as empty-string parameters. Sort serializes as
// the sort_by/order pair, with order gated on a non-empty, allow-listed
// field.
func (c Criteria) QueryParams(mediaType models.MediaType) url.Values {
	params := url.Values{}

	if len(c.Genres) > 0 {
		ids := make([]string, len(c.Genres))
		for i, id := range c.Genres {
			ids[i] = strconv.Itoa(id)
		}
		params.Set("with_genres", strings.Join(ids, ","))
	}
	if c.ReleaseYear != "" {
		if mediaType == models.MediaTypeTV {
			params.Set("first_air_date_year", c.ReleaseYear)
		} else {
			params.Set("primary_release_year", c.ReleaseYear)
		}
	}
	if c.Language != "" {
		params.Set("with_original_language", c.Language)
	}
	if c.Country != "" {
		params.Set("with_origin_country", c.Country)
	}
	if c.Keywords != "" {
		params.Set("query", c.Keywords)
	}
	if c.Sort.Field != "" && sortFields[c.Sort.Field] {
		params.Set("sort_by", c.Sort.Field)
		order := c.Sort.Order
		if order != SortAsc {
			order = SortDesc
		}
		params.Set("order", string(order))
	}
	if c.Page > 0 {
		params.Set("page", strconv.Itoa(c.Page))
	}

	return params
}

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// ParseCriteria builds criteria from request query parameters. Invalid values
// fail with ErrInvalidInput rather than being silently dropped.
func ParseCriteria(query map[string]string) (Criteria, error) {
	var c Criteria

	if raw := query["genres"]; raw != "" {
		for _, tok := range strings.Split(raw, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(tok))
			if err != nil {
				return Criteria{}, fmt.Errorf("invalid genre id %q: %w", tok, models.ErrInvalidInput)
			}
			c.Genres = append(c.Genres, id)
		}
	}
	if year := query["releaseYear"]; year != "" {
		if !yearPattern.MatchString(year) {
			return Criteria{}, fmt.Errorf("invalid release year %q: %w", year, models.ErrInvalidInput)
		}
		c.ReleaseYear = year
	}
	c.Language = query["language"]
	c.Country = query["country"]
	c.Keywords = query["keywords"]

	if field := query["sort_by"]; field != "" {
		if !sortFields[field] {
			return Criteria{}, fmt.Errorf("unsupported sort field %q: %w", field, models.ErrInvalidInput)
		}
		order := SortOrder(query["order"])
		if order == "" {
			order = SortDesc
		}
		if order != SortAsc && order != SortDesc {
			return Criteria{}, fmt.Errorf("unsupported sort order %q: %w", query["order"], models.ErrInvalidInput)
		}
		c.Sort = Sort{Field: field, Order: order}
	}

	if raw := query["page"]; raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return Criteria{}, fmt.Errorf("invalid page %q: %w", raw, models.ErrInvalidInput)
		}
		c.Page = page
	}

	return c, nil
}
