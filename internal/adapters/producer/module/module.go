// Package module renders one Scala module source with a typed builder per
// injectable.
package module

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"text/template"

	"go.trai.ch/syringe/internal/adapters/producer"
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports"
	"go.trai.ch/zerr"
)

// Extension is the file extension of generated module sources.
const Extension = ".scala"

var moduleTemplate = template.Must(template.New("module").Parse(`{{if .Package}}package {{.Package}}

{{end}}import com.avast.syringe.config.perspective._
{{if .Description}}
/**
 * {{.Description}}
 */{{end}}
object {{.Name}} extends Module{{range .Traits}} with {{.}}{{end}} {
{{range .Builders}}
  class {{.Name}} extends Builder[{{.Type}}](classOf[{{.Type}}]){{if .Trait}} with {{.Trait}}{{end}} {
{{- range .Setters}}
{{if .Doc}}    /** {{.Doc}} */
{{end}}    def {{.Name}}(value: {{.Type}}): {{.Builder}} = {
      set("{{.Property}}", value)
      this
    }
{{- end}}
  }

  def {{.Factory}}: {{.Name}} = new {{.Name}}
{{end}}}
`))

type moduleData struct {
	Package     string
	Description string
	Name        string
	Traits      []string
	Builders    []builderData
}

type builderData struct {
	Name    string
	Factory string
	Type    string
	Trait   string
	Setters []setterData
}

type setterData struct {
	Name     string
	Property string
	Type     string
	Builder  string
	Doc      string
}

// Producer emits <package path>/<ModuleName>.scala aggregating every injectable.
type Producer struct {
	logger ports.Logger
}

// New creates a module producer.
func New(logger ports.Logger) *Producer {
	return &Producer{logger: logger}
}

// Kind returns domain.ProducerModule.
func (p *Producer) Kind() domain.ProducerKind {
	return domain.ProducerModule
}

// Produce renders the module source. Builders follow the input order.
func (p *Producer) Produce(
	ctx context.Context,
	injectables []domain.LoadedInjectable,
	req domain.GenerationRequest,
) (domain.ArtifactSet, error) {
	if err := domain.ValidateModuleName(req.ModuleName); err != nil {
		return domain.ArtifactSet{}, err
	}
	if err := producer.CheckLive(injectables); err != nil {
		return domain.ArtifactSet{}, err
	}

	data := moduleData{
		Package:     req.ModulePackage,
		Description: comment(req.ModuleDescription),
		Name:        req.ModuleName,
		Traits:      req.ModuleTraits,
	}
	names := builderNames(injectables)
	for i, inj := range injectables {
		if err := ctx.Err(); err != nil {
			return domain.ArtifactSet{}, zerr.Wrap(err, "module generation cancelled")
		}
		trait, err := BuilderTrait(req.BuilderTraits, inj.Name())
		if err != nil {
			return domain.ArtifactSet{}, err
		}
		p.logger.Info(fmt.Sprintf("Generating builder for %s for %s", inj.Name(), req.ModuleName))
		data.Builders = append(data.Builders, builder(inj.Type, names[i], trait))
	}

	var buf bytes.Buffer
	if err := moduleTemplate.Execute(&buf, data); err != nil {
		return domain.ArtifactSet{}, zerr.With(zerr.Wrap(err, "failed to render module"), "module", req.ModuleName)
	}
	return domain.NewArtifactSet(domain.Artifact{
		Path:    Path(req.ModulePackage, req.ModuleName),
		Content: buf.Bytes(),
		Source:  req.ModuleName,
	}), nil
}

// Path returns the slash-separated location of a module source.
func Path(pkg, name string) string {
	if pkg == "" {
		return name + Extension
	}
	return strings.ReplaceAll(pkg, ".", "/") + "/" + name + Extension
}

// BuilderTrait returns the trait of the first mapping whose glob matches the
// type name, or "" when none does.
func BuilderTrait(mappings []domain.TraitMapping, typeName string) (string, error) {
	for _, m := range mappings {
		ok, err := path.Match(m.Pattern, typeName)
		if err != nil {
			return "", zerr.With(zerr.Wrap(domain.ErrInvalidRequest, "invalid builder trait pattern"), "pattern", m.Pattern)
		}
		if ok {
			return m.Trait, nil
		}
	}
	return "", nil
}

func builder(h *domain.TypeHandle, name, trait string) builderData {
	b := builderData{
		Name:    name + "Builder",
		Factory: "new" + name,
		Type:    scalaName(h.Name),
		Trait:   trait,
	}
	for _, prop := range producer.Properties(h, domain.DefaultMarkers.FieldLevel) {
		b.Setters = append(b.Setters, setterData{
			Name:     escape(prop.Name),
			Property: prop.Name,
			Type:     producer.ScalaType(prop.Descriptor),
			Builder:  b.Name,
			Doc:      comment(prop.Description),
		})
	}
	return b
}

// builderNames derives a builder base name per injectable from the simple
// name, falling back to the full name where simple names collide.
func builderNames(injectables []domain.LoadedInjectable) []string {
	counts := make(map[string]int, len(injectables))
	for _, inj := range injectables {
		counts[sanitize(domain.SimpleName(inj.Name()))]++
	}
	names := make([]string, len(injectables))
	for i, inj := range injectables {
		simple := sanitize(domain.SimpleName(inj.Name()))
		if counts[simple] > 1 {
			simple = sanitize(inj.Name())
		}
		names[i] = simple
	}
	return names
}

var identReplacer = strings.NewReplacer(".", "_", "$", "_")

func sanitize(name string) string {
	return identReplacer.Replace(name)
}

func scalaName(binary string) string {
	return strings.ReplaceAll(binary, "$", ".")
}

func comment(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "*/", "* /")
}

var keywords = map[string]bool{
	"abstract": true, "case": true, "catch": true, "class": true, "def": true,
	"do": true, "else": true, "extends": true, "false": true, "final": true,
	"finally": true, "for": true, "forSome": true, "if": true, "implicit": true,
	"import": true, "lazy": true, "match": true, "new": true, "null": true,
	"object": true, "override": true, "package": true, "private": true,
	"protected": true, "return": true, "sealed": true, "super": true,
	"this": true, "throw": true, "trait": true, "true": true, "try": true,
	"type": true, "val": true, "var": true, "while": true, "with": true,
	"yield": true,
}

func escape(name string) string {
	if keywords[name] || strings.Contains(name, "$") {
		return "`" + name + "`"
	}
	return name
}
