package analyze

import (
	"fmt"
	"go/types"
	"sort"

	"golang.org/x/tools/go/packages"

	"formvalue/internal/diagnostic"
	"formvalue/internal/naming"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// modelMethods is the method set of form.Model.
var modelMethods = []string{"Attribute", "Casts", "LegacyDates", "Relation"}

// Analyzer loads Go packages and reports override methods.
type Analyzer struct {
	report *Report
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{report: NewReport()}
}

// LoadPackages loads the specified packages and analyzes their types.
// Patterns are standard Go package patterns (e.g., "./models", "formvalue/examples/blog").
func (a *Analyzer) LoadPackages(patterns ...string) (*Report, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg.PkgPath, pkg.Types)
	}

	sort.Strings(a.report.Packages)

	return a.report, nil
}

// Report returns the current report.
func (a *Analyzer) Report() *Report {
	return a.report
}

// processPackage analyzes the exported named types of a package.
func (a *Analyzer) processPackage(pkgPath string, pkg *types.Package) {
	a.report.Packages = append(a.report.Packages, pkgPath)

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok || types.IsInterface(named) {
			continue
		}

		info := a.analyzeType(named, pkg)
		info.ID = TypeID{PkgPath: pkgPath, Name: name}

		if !info.IsModel && len(info.Overrides) == 0 && len(info.Rejected) == 0 {
			continue
		}

		a.report.Types[info.ID] = info
		a.diagnose(info)
	}
}

// analyzeType inspects the method set of *T, which includes the methods of T.
func (a *Analyzer) analyzeType(named *types.Named, pkg *types.Package) *TypeInfo {
	info := &TypeInfo{}
	mset := types.NewMethodSet(types.NewPointer(named))
	qualifier := types.RelativeTo(pkg)

	present := make(map[string]bool, mset.Len())

	for i := range mset.Len() {
		sel := mset.At(i)
		fn, ok := sel.Obj().(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}

		present[fn.Name()] = true

		key, ok := naming.KeyOf(fn.Name())
		if !ok {
			continue
		}

		sig, ok := fn.Type().(*types.Signature)
		if !ok {
			continue
		}

		override, reason := checkSignature(sig, qualifier)
		if reason != "" {
			info.Rejected = append(info.Rejected, fn.Name()+": "+reason)
			continue
		}

		override.Method = fn.Name()
		override.Key = key
		override.Promoted = len(sel.Index()) > 1
		info.Overrides = append(info.Overrides, override)
	}

	info.IsModel = true
	for _, name := range modelMethods {
		if !present[name] {
			info.IsModel = false
			break
		}
	}

	return info
}

// checkSignature mirrors the shapes accepted by the override registry.
func checkSignature(sig *types.Signature, qualifier types.Qualifier) (OverrideInfo, string) {
	if sig.Params().Len() != 1 {
		return OverrideInfo{}, fmt.Sprintf("expected exactly one parameter, got %d", sig.Params().Len())
	}

	if sig.Variadic() {
		return OverrideInfo{}, "variadic parameter is not supported"
	}

	results := sig.Results()

	override := OverrideInfo{Param: types.TypeString(sig.Params().At(0).Type(), qualifier)}

	switch results.Len() {
	case 1:
	case 2:
		if !types.Identical(results.At(1).Type(), types.Universe.Lookup("error").Type()) {
			return OverrideInfo{}, "second result must be error, got " + types.TypeString(results.At(1).Type(), qualifier)
		}

		override.HasError = true
	default:
		return OverrideInfo{}, fmt.Sprintf("expected (value) or (value, error) results, got %d results", results.Len())
	}

	override.Result = types.TypeString(results.At(0).Type(), qualifier)

	return override, ""
}

func (a *Analyzer) diagnose(info *TypeInfo) {
	model := info.ID.String()

	for _, o := range info.Overrides {
		a.report.Diagnostics.AddInfo(diagnostic.CodeOverrideFound,
			fmt.Sprintf("overrides %q with func(%s) %s", o.Key, o.Param, o.Result), model, o.Method)
	}

	for _, rejected := range info.Rejected {
		a.report.Diagnostics.AddWarning(diagnostic.CodeInvalidSignature, rejected, model, "")
	}

	if len(info.Overrides) > 0 && !info.IsModel {
		a.report.Diagnostics.AddWarning(diagnostic.CodeNotAModel,
			"type has overrides but does not implement the form model methods", model, "")
	}
}
