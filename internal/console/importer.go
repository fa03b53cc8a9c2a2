package console

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gamecatalog/admin/internal/categories"
	"gamecatalog/admin/internal/editor"

	"github.com/cheggaaa/pb/v3"
	"gopkg.in/yaml.v3"
)

// catalogFile is the YAML layout accepted by the import command.
//
//	games:
//	  - category: ACTION        # code or display name
//	    image: covers/foo.png   # relative to the YAML file
//	    default: en
//	    names:
//	      en: Foo
//	      vi: Bar
type catalogFile struct {
	Games []importedGame `yaml:"games"`
}

type importedGame struct {
	Category string            `yaml:"category"`
	Image    string            `yaml:"image"`
	Default  string            `yaml:"default"`
	Names    map[string]string `yaml:"names"`
}

func decodeCatalogFile(data []byte) (*catalogFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f catalogFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode import file: %w", err)
	}
	return &f, nil
}

// ImportError lists the games of an import that could not be created.
type ImportError struct {
	Failed map[int]error // by zero-based position in the file
	Total  int
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("%d of %d games failed to import", len(e.Failed), e.Total)
}

func (a *App) runImport(ctx context.Context, args []string) error {
	fs := a.flagSet("import")
	keepGoing := fs.Bool("continue-on-error", false, "import the remaining games after a failure")
	if err := fs.Parse(args); err != nil {
		return usageError("%v", err)
	}
	if fs.NArg() != 1 {
		return usageError("import takes one YAML file")
	}
	path := fs.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}
	file, err := decodeCatalogFile(data)
	if err != nil {
		return err
	}
	if len(file.Games) == 0 {
		a.notices.Succeed("Nothing to import.")
		return nil
	}
	if err := a.login(ctx); err != nil {
		return err
	}

	m := a.categoryManager()
	if err := m.Reload(ctx); err != nil {
		return err
	}

	bar := pb.New(len(file.Games)).SetWriter(a.errOut)
	if !a.progress {
		bar.SetWriter(io.Discard)
	}
	bar.Start()
	failures := &ImportError{Failed: map[int]error{}, Total: len(file.Games)}
	baseDir := filepath.Dir(path)
	for i, g := range file.Games {
		err := a.importGame(ctx, m, baseDir, g)
		bar.Increment()
		if err == nil {
			continue
		}
		a.log.Warn("import failed", "index", i, "error", err)
		failures.Failed[i] = err
		if !*keepGoing {
			break
		}
	}
	bar.Finish()

	for _, i := range sortedKeys(failures.Failed) {
		fmt.Fprintf(a.errOut, "game #%d: %s\n", i+1, Describe(failures.Failed[i]))
	}
	if len(failures.Failed) > 0 {
		return failures
	}
	a.notices.Succeed(fmt.Sprintf("Imported %d games.", len(file.Games)))
	return nil
}

func (a *App) importGame(ctx context.Context, m *categories.Manager, baseDir string, g importedGame) error {
	e := editor.New(a.client, a.log)
	e.SetCategory(resolveCategory(m, g.Category))

	langs := make([]string, 0, len(g.Names))
	for lang := range g.Names {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		e.SetName(lang, g.Names[lang])
	}
	if g.Default != "" {
		e.SetDefault(g.Default)
	}

	if g.Image != "" {
		imgPath := g.Image
		if !filepath.IsAbs(imgPath) {
			imgPath = filepath.Join(baseDir, imgPath)
		}
		data, err := os.ReadFile(imgPath)
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		e.SetImage(filepath.Base(imgPath), data)
	}

	_, err := e.Submit(ctx)
	return err
}

// resolveCategory accepts a code or, failing that, a display name.
func resolveCategory(m *categories.Manager, ref string) string {
	ref = strings.TrimSpace(ref)
	if _, ok := m.Find(ref); ok {
		return ref
	}
	for _, c := range m.Categories() {
		if strings.EqualFold(c.DisplayName, ref) {
			return c.Code
		}
	}
	return ref
}

func sortedKeys(m map[int]error) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
