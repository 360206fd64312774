package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mhaefliger/grocery/pkg/domain"
	"github.com/mhaefliger/grocery/pkg/domain/category"
)

func TestPayload_Validate(t *testing.T) {
	p := category.Payload{Name: "  Dairy ", Color: " #FF5733 "}
	assert.NoError(t, p.Validate())
	assert.Equal(t, "Dairy", p.Name)
	assert.Equal(t, "#FF5733", p.Color)
}

func TestPayload_Validate_EmptyColorIsFine(t *testing.T) {
	p := category.Payload{Name: "Dairy", Color: "   "}
	assert.NoError(t, p.Validate())
	assert.Equal(t, "", p.Color)
}

func TestPayload_Validate_Rejections(t *testing.T) {
	for name, p := range map[string]category.Payload{
		"empty name":      {Name: "  "},
		"bad color":       {Name: "Dairy", Color: "FF5733"},
		"short color":     {Name: "Dairy", Color: "#FFF"},
		"non-hex color":   {Name: "Dairy", Color: "#GGGGGG"},
		"too long color":  {Name: "Dairy", Color: "#FF57331"},
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, p.Validate(), domain.ErrValidation)
		})
	}
}
