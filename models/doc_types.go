package models

// Document types. The literals are the Spanish tokens used in article rows
// and in the /docs/:doc_type route.
const (
	DocTypeError        = "error"
	DocTypeGuide        = "guia"
	DocTypeBehavior     = "comportamiento"
	DocTypeFAQ          = "faq"
	DocTypeAnnouncement = "novedad"
)

// Primary categories. These name the navigation section an article belongs to.
const (
	CategoryErrors        = "errores"
	CategoryGuides        = "guias"
	CategoryBestPractices = "buenas-practicas"
	CategoryFAQ           = "faq"
	CategoryNews          = "novedades"
)

// docTypeToPrimaryCategory is the closed mapping between a document type and
// the primary category its articles must carry to appear under that tab.
var docTypeToPrimaryCategory = map[string]string{
	DocTypeError:        CategoryErrors,
	DocTypeGuide:        CategoryGuides,
	DocTypeBehavior:     CategoryBestPractices,
	DocTypeFAQ:          CategoryFAQ,
	DocTypeAnnouncement: CategoryNews,
}

// PrimaryCategoryFor returns the primary category expected for a document
// type. Unknown tokens map to themselves, so an unrecognized type yields an
// empty result set downstream instead of an error.
func PrimaryCategoryFor(docType string) string {
	if cat, ok := docTypeToPrimaryCategory[docType]; ok {
		return cat
	}
	return docType
}
