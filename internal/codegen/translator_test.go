package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Braces_RenderClass_ConcreteWithFields(t *testing.T) {
	assert := assert.New(t)
	rc := RenderedClass{
		Name:           "Binary",
		Extends:        "Expr",
		Fields:         []RenderedField{{Name: "left", Type: "Expr"}, {Name: "right", Type: "Expr"}},
		Params:         []string{"Expr left", "Expr right"},
		Assigns:        []string{"this.left = left;", "this.right = right;"},
		HasConstructor: true,
	}

	out := Braces{}.RenderClass(rc)
	assert.Contains(out, "public class Binary extends Expr {")
	assert.Contains(out, "public Expr left;")
	assert.Contains(out, "public Binary(Expr left, Expr right) {")
	assert.Contains(out, "this.left = left;")
}

func Test_Braces_RenderClass_AbstractBaseHasNoConstructor(t *testing.T) {
	assert := assert.New(t)
	rc := RenderedClass{Name: "Expr", IsAbstract: true}

	out := Braces{}.RenderClass(rc)
	assert.Contains(out, "public abstract class Expr {")
	assert.NotContains(out, "public Expr(")
}

func Test_Dynamic_RenderClass_ConcreteWithFields(t *testing.T) {
	assert := assert.New(t)
	rc := RenderedClass{
		Name:           "Binary",
		Extends:        "Expr",
		Params:         []string{"left: Expr", "right: Expr"},
		Assigns:        []string{"self.left = left", "self.right = right"},
		HasConstructor: true,
	}

	out := Dynamic{}.RenderClass(rc)
	assert.Contains(out, "class Binary(Expr):")
	assert.Contains(out, "def __init__(self, left: Expr, right: Expr):")
	assert.Contains(out, "self.left = left")
}

func Test_Dynamic_RenderClass_AbstractBaseIsPass(t *testing.T) {
	assert := assert.New(t)
	rc := RenderedClass{Name: "Expr", IsAbstract: true}

	out := Dynamic{}.RenderClass(rc)
	assert.Contains(out, "class Expr:")
	assert.Contains(out, "pass")
}

func Test_Braces_ListTypeName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("List<Item>", Braces{}.ToListTypeName("Item"))
}

func Test_Dynamic_ListTypeName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("[Item]", Dynamic{}.ToListTypeName("Item"))
}

func Test_PascalAndCamelCase(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("LeftParen", pascalCase("LEFT_PAREN"))
	assert.Equal("leftParen", camelCase("LEFT_PAREN"))
	assert.Equal("Expr", pascalCase("expr"))
}
