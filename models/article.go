package models

// ArticleRow is the persisted shape of a help-center article. The table keeps
// the historical name "errors": it predates the non-error document types.
// List-valued fields are stored as newline-joined text columns.
type ArticleRow struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Type             string `gorm:"type:varchar(50);not null;default:error" json:"type"`
	Title            string `gorm:"type:varchar(255);not null" json:"title"`
	ShortDescription string `gorm:"type:varchar(255);not null" json:"short_description"`
	Category         string `gorm:"type:varchar(100);not null" json:"category"`
	IsCommon         bool   `gorm:"default:false" json:"is_common"`
	ClientMessage    string `gorm:"type:varchar(255);not null" json:"client_message"`

	CausesText        string `gorm:"type:text;default:''" json:"causes_text"`
	QuickStepsText    string `gorm:"type:text;default:''" json:"quick_steps_text"`
	InternalStepsText string `gorm:"type:text;default:''" json:"internal_steps_text"`
	ImagesText        string `gorm:"type:text;default:''" json:"images_text"`

	VideoURL *string `gorm:"type:varchar(500)" json:"video_url"`

	// Columns added after the initial deployment; database.EnsureExtraColumns
	// backfills them on tables created before they existed.
	PrimaryCategory string  `gorm:"type:varchar(50);default:errores" json:"primary_category"`
	Description     *string `gorm:"type:text" json:"description"`
	StepsText       string  `gorm:"type:text" json:"steps_text"`
	AnswerText      *string `gorm:"type:text" json:"answer_text"`
	TagsText        string  `gorm:"type:text" json:"tags_text"`
}

// TableName specifies the table name for the ArticleRow model.
func (ArticleRow) TableName() string {
	return "errors"
}

// ArticleDraft carries every user-editable field of an article. Which fields
// are meaningful depends on Type: causes/quick_steps/internal_steps belong to
// errors, steps and description to guides and behaviors, answer and tags to
// FAQs.
type ArticleDraft struct {
	Type             string   `json:"type"`
	Title            string   `json:"title"`
	PrimaryCategory  string   `json:"primary_category"`
	Category         string   `json:"category"`
	IsCommon         bool     `json:"is_common"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description"`
	ClientMessage    string   `json:"client_message"`
	Causes           []string `json:"causes"`
	QuickSteps       []string `json:"quick_steps"`
	InternalSteps    []string `json:"internal_steps"`
	Steps            []string `json:"steps"`
	Answer           string   `json:"answer"`
	Tags             []string `json:"tags"`
	Images           []string `json:"images"`
	VideoURL         string   `json:"video_url"`
}

// Article is a stored article: a draft plus its store-assigned identifier.
type Article struct {
	ID uint `json:"id"`
	ArticleDraft
}

// ToArticle converts a stored row into the in-memory record. Nullable columns
// coalesce to their defaults and list columns are decoded through the shared
// line codec.
func (r *ArticleRow) ToArticle() *Article {
	primaryCategory := r.PrimaryCategory
	if primaryCategory == "" {
		primaryCategory = CategoryErrors
	}

	return &Article{
		ID: r.ID,
		ArticleDraft: ArticleDraft{
			Type:             r.Type,
			Title:            r.Title,
			PrimaryCategory:  primaryCategory,
			Category:         r.Category,
			IsCommon:         r.IsCommon,
			ShortDescription: r.ShortDescription,
			Description:      stringOrEmpty(r.Description),
			ClientMessage:    r.ClientMessage,
			Causes:           SplitLines(r.CausesText),
			QuickSteps:       SplitLines(r.QuickStepsText),
			InternalSteps:    SplitLines(r.InternalStepsText),
			Steps:            SplitLines(r.StepsText),
			Answer:           stringOrEmpty(r.AnswerText),
			Tags:             SplitLines(r.TagsText),
			Images:           SplitLines(r.ImagesText),
			VideoURL:         stringOrEmpty(r.VideoURL),
		},
	}
}

// ToRow converts a draft into the persisted shape. List fields are encoded
// through the shared line codec; an empty list stores as an empty string,
// while the optional scalar columns (description, answer_text, video_url)
// store NULL when empty. The list/scalar asymmetry is intentional and matches
// what existing rows already contain.
func (d *ArticleDraft) ToRow() *ArticleRow {
	return &ArticleRow{
		Type:              d.Type,
		Title:             d.Title,
		PrimaryCategory:   d.PrimaryCategory,
		Category:          d.Category,
		ShortDescription:  d.ShortDescription,
		Description:       nullableString(d.Description),
		IsCommon:          d.IsCommon,
		ClientMessage:     d.ClientMessage,
		CausesText:        JoinLines(d.Causes),
		QuickStepsText:    JoinLines(d.QuickSteps),
		InternalStepsText: JoinLines(d.InternalSteps),
		StepsText:         JoinLines(d.Steps),
		AnswerText:        nullableString(d.Answer),
		TagsText:          JoinLines(d.Tags),
		ImagesText:        JoinLines(d.Images),
		VideoURL:          nullableString(d.VideoURL),
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
