package main

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/go5rae/portfolio/internal/i18n"
	"github.com/go5rae/portfolio/internal/section"
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// registerValidators adds the site's custom binding tags to gin's validator.
func registerValidators() error {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validatorsErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		if err := v.RegisterValidation("lang", func(fl validator.FieldLevel) bool {
			return i18n.Valid(fl.Field().String())
		}); err != nil {
			validatorsErr = err
			return
		}
		validatorsErr = v.RegisterValidation("section", func(fl validator.FieldLevel) bool {
			_, ok := section.Parse(fl.Field().String())
			return ok
		})
	})
	return validatorsErr
}

type contactRequest struct {
	Name    string `form:"name" binding:"required,max=100"`
	Email   string `form:"email" binding:"required,email,max=254"`
	Message string `form:"message" binding:"required,max=5000"`
	Lang    string `form:"lang" binding:"omitempty,lang"`
}

type newsletterRequest struct {
	Email string `form:"email" binding:"required,email,max=254"`
	Lang  string `form:"lang" binding:"omitempty,lang"`
}

type visibilityEntry struct {
	ID    string  `json:"id" binding:"required,section"`
	Ratio float64 `json:"ratio" binding:"gte=0,lte=1"`
}

type visibilityRequest struct {
	Entries  []visibilityEntry       `json:"entries" binding:"required_without=Viewport,max=16,dive"`
	Viewport *section.Rect           `json:"viewport" binding:"required_without=Entries"`
	Regions  map[string]section.Rect `json:"regions" binding:"required_with=Viewport,max=16,dive,keys,section,endkeys"`
}

// entries converts a validated request into tracker entries, keeping order.
func (r visibilityRequest) entries() []section.Entry {
	out := make([]section.Entry, 0, len(r.Entries))
	for _, e := range r.Entries {
		id, _ := section.Parse(e.ID)
		out = append(out, section.Entry{ID: id, Ratio: e.Ratio})
	}
	return out
}

func (r visibilityRequest) regions() map[section.ID]section.Rect {
	out := make(map[section.ID]section.Rect, len(r.Regions))
	for k, rect := range r.Regions {
		if id, ok := section.Parse(k); ok {
			out[id] = rect
		}
	}
	return out
}
