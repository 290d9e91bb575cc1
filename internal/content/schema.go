package content

type kind int

const (
	kindString kind = iota
	kindStringList
	kindDate
)

type field struct {
	name     string
	kind     kind
	required bool
}

func required(name string) field { return field{name: name, kind: kindString, required: true} }
func optional(name string) field { return field{name: name, kind: kindString} }
func list(name string) field     { return field{name: name, kind: kindStringList} }

// Record is implemented by every entity. Normalize fills defaults so that list
// fields are never null and optional defaults are applied.
type Record interface {
	fields() []field
	Normalize()
}

func (Category) fields() []field {
	return []field{required("name"), required("slug"), optional("description")}
}

func (*Category) Normalize() {}

func (Product) fields() []field {
	return []field{
		required("name"), required("slug"), required("category"),
		optional("summary"), optional("description"),
		list("applications"), list("benefits"), list("sectors"),
		list("documentation_urls"), list("keywords"),
		optional("image_url"),
	}
}

func (p *Product) Normalize() {
	p.Applications = orEmpty(p.Applications)
	p.Benefits = orEmpty(p.Benefits)
	p.Sectors = orEmpty(p.Sectors)
	p.DocumentationURLs = orEmpty(p.DocumentationURLs)
	p.Keywords = orEmpty(p.Keywords)
}

func (Sector) fields() []field {
	return []field{
		required("name"), required("slug"),
		list("challenges"), list("needs"), list("solutions"), list("outcomes"),
		optional("image_url"),
	}
}

func (s *Sector) Normalize() {
	s.Challenges = orEmpty(s.Challenges)
	s.Needs = orEmpty(s.Needs)
	s.Solutions = orEmpty(s.Solutions)
	s.Outcomes = orEmpty(s.Outcomes)
}

func (News) fields() []field {
	return []field{
		required("title"), required("slug"),
		optional("excerpt"), optional("content"), optional("cover_image_url"),
		{name: "published_at", kind: kindDate},
		list("tags"),
	}
}

func (n *News) Normalize() { n.Tags = orEmpty(n.Tags) }

func (Document) fields() []field {
	return []field{
		required("title"), optional("description"), required("url"),
		optional("category"), optional("product_slug"), optional("language"),
	}
}

func (d *Document) Normalize() {
	if d.Language == nil {
		lang := DefaultLanguage
		d.Language = &lang
	}
}

func (Job) fields() []field {
	return []field{
		required("title"), required("slug"),
		optional("location"), optional("department"), optional("type"), optional("description"),
		list("requirements"),
	}
}

func (j *Job) Normalize() { j.Requirements = orEmpty(j.Requirements) }

func (Application) fields() []field {
	return []field{
		required("name"), required("email"),
		optional("phone"), optional("job_slug"), optional("message"),
		optional("cv_url"), optional("linkedin_url"),
	}
}

func (*Application) Normalize() {}

func (ContactMessage) fields() []field {
	return []field{
		required("name"), required("email"),
		optional("phone"), optional("company"), optional("subject"),
		required("message"), optional("topic"),
	}
}

func (*ContactMessage) Normalize() {}

func (CompanyProfile) fields() []field {
	return []field{
		required("company_name"),
		optional("mission"), optional("vision"), list("values"), optional("history"),
		list("facilities"), list("locations"),
		optional("quality_approach"), optional("safety_approach"), optional("innovation_approach"),
	}
}

func (c *CompanyProfile) Normalize() {
	c.Values = orEmpty(c.Values)
	c.Facilities = orEmpty(c.Facilities)
	c.Locations = orEmpty(c.Locations)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
