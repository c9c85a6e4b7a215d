package models

import "time"

// Tema is an ordered topic section inside a course description.
type Tema struct {
	Titulo     string   `json:"titulo"`
	Contenidos []string `json:"contenidos"`
}

// Curso is a course record as persisted in cursos.json. JSON keys follow the
// historical file format so existing data files load unchanged.
type Curso struct {
	ID                    string   `json:"id"`
	Slug                  string   `json:"slug"`
	Img                   string   `json:"img"`
	Images                []string `json:"images,omitempty"`
	Title                 string   `json:"title"`
	Desc                  string   `json:"desc"`
	DescLong              string   `json:"descLong"`
	Lessons               string   `json:"lessons"`
	Duration              string   `json:"duration"`
	Level                 string   `json:"level"`
	Teacher               string   `json:"teacher"`
	PriceProfesional      string   `json:"priceProfesional"`
	PriceEstudiante       string   `json:"priceEstudiante"`
	OfferPriceProfesional string   `json:"offerPriceProfesional,omitempty"`
	OfferPriceEstudiante  string   `json:"offerPriceEstudiante,omitempty"`
	OfferEndDate          string   `json:"offerEndDate,omitempty"`
	StartDate             string   `json:"startDate"`
	EndDate               string   `json:"endDate"`
	Temas                 []Tema   `json:"temas"`
	Categoria             string   `json:"categoria"`
	Visible               *bool    `json:"visible,omitempty"`
}

// IsVisible reports the effective visibility; records without the flag are
// visible.
func (c Curso) IsVisible() bool {
	return c.Visible == nil || *c.Visible
}

// OfferActive reports whether the promotional prices still apply at the given
// instant. Offer end dates are stored as YYYY-MM-DD and the offer covers the
// whole end day.
func (c Curso) OfferActive(now time.Time) bool {
	if c.OfferEndDate == "" {
		return false
	}
	end, err := time.Parse("2006-01-02", c.OfferEndDate)
	if err != nil {
		return false
	}
	return now.Before(end.AddDate(0, 0, 1))
}

// CursoCollection is the top-level document stored in cursos.json.
type CursoCollection struct {
	Cursos []Curso `json:"cursos"`
}
