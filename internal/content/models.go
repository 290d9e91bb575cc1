package content

// Collection names used by the store. Each entity lives in the collection named
// after its lowercased type name.
const (
	CollectionCategory       = "category"
	CollectionProduct        = "product"
	CollectionSector         = "sector"
	CollectionNews           = "news"
	CollectionDocument       = "document"
	CollectionJob            = "job"
	CollectionApplication    = "application"
	CollectionContactMessage = "contactmessage"
	CollectionCompanyProfile = "companyprofile"
)

// DefaultLanguage is applied to documents stored without a language code.
const DefaultLanguage = "it"

// DefaultCompanyName is returned when no company profile has been published yet.
const DefaultCompanyName = "Azienda Chimica"

// Category groups products, e.g. "chimici per conceria" or "fine chemicals".
type Category struct {
	Name        string  `json:"name" bson:"name"`
	Slug        string  `json:"slug" bson:"slug"`
	Description *string `json:"description" bson:"description"`
}

// Product is a catalog entry. Category and Sectors hold slugs of the related
// records; they are informational and never resolved.
type Product struct {
	Name              string   `json:"name" bson:"name"`
	Slug              string   `json:"slug" bson:"slug"`
	Category          string   `json:"category" bson:"category"`
	Summary           *string  `json:"summary" bson:"summary"`
	Description       *string  `json:"description" bson:"description"`
	Applications      []string `json:"applications" bson:"applications"`
	Benefits          []string `json:"benefits" bson:"benefits"`
	Sectors           []string `json:"sectors" bson:"sectors"`
	DocumentationURLs []string `json:"documentation_urls" bson:"documentation_urls"`
	Keywords          []string `json:"keywords" bson:"keywords"`
	ImageURL          *string  `json:"image_url" bson:"image_url"`
}

// Sector is an industry or market served by the company.
type Sector struct {
	Name       string   `json:"name" bson:"name"`
	Slug       string   `json:"slug" bson:"slug"`
	Challenges []string `json:"challenges" bson:"challenges"`
	Needs      []string `json:"needs" bson:"needs"`
	Solutions  []string `json:"solutions" bson:"solutions"`
	Outcomes   []string `json:"outcomes" bson:"outcomes"`
	ImageURL   *string  `json:"image_url" bson:"image_url"`
}

// News covers articles and press releases.
type News struct {
	Title         string   `json:"title" bson:"title"`
	Slug          string   `json:"slug" bson:"slug"`
	Excerpt       *string  `json:"excerpt" bson:"excerpt"`
	Content       *string  `json:"content" bson:"content"`
	CoverImageURL *string  `json:"cover_image_url" bson:"cover_image_url"`
	PublishedAt   *Date    `json:"published_at" bson:"published_at"`
	Tags          []string `json:"tags" bson:"tags"`
}

// Document is a downloadable resource (datasheet, catalog, certification).
// URL points at the file; the file itself is never stored here.
type Document struct {
	Title       string  `json:"title" bson:"title"`
	Description *string `json:"description" bson:"description"`
	URL         string  `json:"url" bson:"url"`
	Category    *string `json:"category" bson:"category"`
	ProductSlug *string `json:"product_slug" bson:"product_slug"`
	Language    *string `json:"language" bson:"language"`
}

// Job is an open position.
type Job struct {
	Title        string   `json:"title" bson:"title"`
	Slug         string   `json:"slug" bson:"slug"`
	Location     *string  `json:"location" bson:"location"`
	Department   *string  `json:"department" bson:"department"`
	Type         *string  `json:"type" bson:"type"`
	Description  *string  `json:"description" bson:"description"`
	Requirements []string `json:"requirements" bson:"requirements"`
}

// Application is a job application, either for a posted role (JobSlug set)
// or spontaneous.
type Application struct {
	Name        string  `json:"name" bson:"name"`
	Email       string  `json:"email" bson:"email"`
	Phone       *string `json:"phone" bson:"phone"`
	JobSlug     *string `json:"job_slug" bson:"job_slug"`
	Message     *string `json:"message" bson:"message"`
	CVURL       *string `json:"cv_url" bson:"cv_url"`
	LinkedInURL *string `json:"linkedin_url" bson:"linkedin_url"`
}

// ContactMessage is a contact form submission.
type ContactMessage struct {
	Name    string  `json:"name" bson:"name"`
	Email   string  `json:"email" bson:"email"`
	Phone   *string `json:"phone" bson:"phone"`
	Company *string `json:"company" bson:"company"`
	Subject *string `json:"subject" bson:"subject"`
	Message string  `json:"message" bson:"message"`
	Topic   *string `json:"topic" bson:"topic"` // commerciale, tecnico, altro
}

// CompanyProfile is the single CMS-managed record describing the company.
type CompanyProfile struct {
	CompanyName        string   `json:"company_name" bson:"company_name"`
	Mission            *string  `json:"mission" bson:"mission"`
	Vision             *string  `json:"vision" bson:"vision"`
	Values             []string `json:"values" bson:"values"`
	History            *string  `json:"history" bson:"history"`
	Facilities         []string `json:"facilities" bson:"facilities"`
	Locations          []string `json:"locations" bson:"locations"`
	QualityApproach    *string  `json:"quality_approach" bson:"quality_approach"`
	SafetyApproach     *string  `json:"safety_approach" bson:"safety_approach"`
	InnovationApproach *string  `json:"innovation_approach" bson:"innovation_approach"`
}
