package entity

import (
	"errors"
	"strings"
)

// Required-field checks, run before any database write. Each returns a
// field-specific error so the caller can surface it directly.

func (m *MenuItem) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("name is required")
	}
	if m.CategoryID == 0 {
		return errors.New("category is required")
	}
	return nil
}

func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

func (p *BlogPost) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(p.Content) == "" {
		return errors.New("content is required")
	}
	return nil
}

func (t *Testimonial) Validate() error {
	if strings.TrimSpace(t.CustomerName) == "" {
		return errors.New("customer name is required")
	}
	if strings.TrimSpace(t.Review) == "" {
		return errors.New("review is required")
	}
	return nil
}

func (g *GalleryImage) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return errors.New("title is required")
	}
	return nil
}

func (m *ContactMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(m.Email) == "" {
		return errors.New("email is required")
	}
	if strings.TrimSpace(m.Message) == "" {
		return errors.New("message is required")
	}
	return nil
}

func (o *Order) Validate() error {
	if strings.TrimSpace(o.CustomerName) == "" {
		return errors.New("customer name is required")
	}
	if strings.TrimSpace(o.CustomerPhone) == "" {
		return errors.New("customer phone is required")
	}
	return nil
}

func (p *Promotion) Validate() error {
	if strings.TrimSpace(p.PromoCode) == "" {
		return errors.New("promo code is required")
	}
	return nil
}
