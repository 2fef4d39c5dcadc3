package books

type ListBooksQuery struct {
	Genre     *string `query:"genre" json:"genre,omitempty"`
	Author    *string `query:"author" json:"author,omitempty" validate:"omitempty,max=100"`
	Available *bool   `query:"available" json:"available,omitempty"`
	MinPages  *int    `query:"min_pages" json:"min_pages,omitempty" validate:"omitempty,min=0"`
	MaxPages  *int    `query:"max_pages" json:"max_pages,omitempty" validate:"omitempty,min=0"`
	Skip      *int    `query:"skip" json:"skip,omitempty" default:"0" validate:"omitempty,min=0"`
	Limit     *int    `query:"limit" json:"limit,omitempty" default:"10" validate:"omitempty,min=1,max=100"`
}

type CreateBookPayload struct {
	Title         string  `json:"title" mod:"trim" validate:"required,max=200"`
	Author        string  `json:"author" mod:"trim" validate:"required,max=100"`
	ISBN          string  `json:"isbn" mod:"trim" validate:"required,isbn"`
	PublishedYear int     `json:"published_year" validate:"required,gte=1000,lte=2100"`
	Pages         int     `json:"pages" validate:"required,gt=0"`
	Available     *bool   `json:"available,omitempty"`
	Genre         string  `json:"genre" mod:"trim" validate:"required"`
	Summary       *string `json:"summary,omitempty" validate:"omitempty,max=1000"`
}

// UpdateBookPayload is all-pointer so that an omitted field and a field
// explicitly set to its zero value stay distinguishable.
type UpdateBookPayload struct {
	Title         *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Author        *string `json:"author,omitempty" validate:"omitempty,min=1,max=100"`
	ISBN          *string `json:"isbn,omitempty" validate:"omitempty,isbn"`
	PublishedYear *int    `json:"published_year,omitempty" validate:"omitempty,gte=1000,lte=2100"`
	Pages         *int    `json:"pages,omitempty" validate:"omitempty,gt=0"`
	Available     *bool   `json:"available,omitempty"`
	Genre         *string `json:"genre,omitempty" validate:"omitempty,min=1"`
	Summary       *string `json:"summary,omitempty" validate:"omitempty,max=1000"`
}

type SearchBooksQuery struct {
	Genre     *string `query:"genre" json:"genre,omitempty"`
	Available *bool   `query:"available" json:"available,omitempty"`
}
