package comparator

import (
	"reflect"
	"testing"

	"github.com/edarioq/prop-ordering/internal/config"
	"github.com/edarioq/prop-ordering/internal/sorting/field"
	"github.com/edarioq/prop-ordering/internal/sorting/strategies"
)

// named builds a list of named fields; a trailing "=" marks a default value
// or optional member, a leading "*" marks a multiline field, a leading "~"
// marks a field without an assigned value.
func named(descs ...string) []field.Field {
	fields := make([]field.Field, len(descs))
	for i, desc := range descs {
		f := field.Field{Named: true, Kind: field.KindNamed, HasValue: true, Index: i}
		if len(desc) > 0 && desc[0] == '*' {
			f.Multiline = true
			desc = desc[1:]
		}
		if len(desc) > 0 && desc[0] == '~' {
			f.HasValue = false
			desc = desc[1:]
		}
		if len(desc) > 0 && desc[len(desc)-1] == '=' {
			f.HasDefaultOrOptional = true
			desc = desc[:len(desc)-1]
		}
		f.Name = desc
		fields[i] = f
	}
	return fields
}

func names(fields []field.Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
		if f.Kind == field.KindRest {
			out[i] = "...rest"
		}
	}
	return out
}

func newDeclarationComparator(t *testing.T, mutate func(*config.Options)) *Comparator {
	t.Helper()
	opts, err := config.DefaultOptions(config.RuleComponentProps)
	if err != nil {
		t.Fatal(err)
	}
	if mutate != nil {
		mutate(&opts)
	}
	matcher, err := strategies.NewFactory().CreateMatcher(opts)
	if err != nil {
		t.Fatal(err)
	}
	c, err := New(opts, NewClassifier(opts.ReservedNames, matcher, ShorthandByDefault), DeclarationStages)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func newAttributeComparator(t *testing.T, mutate func(*config.Options)) *Comparator {
	t.Helper()
	opts, err := config.DefaultOptions(config.RuleJSXProps)
	if err != nil {
		t.Fatal(err)
	}
	if mutate != nil {
		mutate(&opts)
	}
	matcher, err := strategies.NewFactory().CreateMatcher(opts)
	if err != nil {
		t.Fatal(err)
	}
	c, err := New(opts, NewClassifier(opts.ReservedNames, matcher, ShorthandByValue), AttributeStages)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func sortedNames(c *Comparator, fields []field.Field) []string {
	return names(Apply(fields, c.Permutation(fields)))
}

func TestReservedFirstCallbacksLast(t *testing.T) {
	fields := named("onClick", "id", "disabled=", "variant")

	tests := []struct {
		name   string
		policy config.Policy
		want   []string
	}{
		{name: "defaults last", policy: config.PolicyLast, want: []string{"id", "variant", "disabled", "onClick"}},
		{name: "defaults first", policy: config.PolicyFirst, want: []string{"id", "disabled", "variant", "onClick"}},
		{name: "defaults ignored", policy: config.PolicyIgnore, want: []string{"id", "disabled", "variant", "onClick"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newDeclarationComparator(t, func(o *config.Options) { o.Shorthand = tt.policy })
			if got := sortedNames(c, fields); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sorted = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComprehensiveSort(t *testing.T) {
	fields := named("onRowClick", "loading=", "id", "data", "onPageChange=", "columns", "className=", "emptyMessage=")

	tests := []struct {
		name   string
		policy config.Policy
		want   []string
	}{
		{
			name:   "optional last within buckets",
			policy: config.PolicyLast,
			want:   []string{"id", "columns", "data", "className", "emptyMessage", "loading", "onRowClick", "onPageChange"},
		},
		{
			name:   "unsplit by optionality",
			policy: config.PolicyIgnore,
			want:   []string{"id", "className", "columns", "data", "emptyMessage", "loading", "onPageChange", "onRowClick"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newDeclarationComparator(t, func(o *config.Options) { o.Shorthand = tt.policy })
			got := sortedNames(c, fields)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sorted = %v, want %v", got, tt.want)
			}

			sorted := Apply(fields, c.Permutation(fields))
			if !c.IsOrdered(sorted) {
				t.Error("sorted output is not reported as ordered")
			}
			if _, needs := c.Check(sorted); needs {
				t.Error("sorted output still needs reordering")
			}
		})
	}
}

func TestRestIsPinnedLast(t *testing.T) {
	fields := named("b", "a", "onClick")
	rest := field.Field{Kind: field.KindRest, Index: 3}
	fields = append([]field.Field{rest}, fields...)
	for i := range fields {
		fields[i].Index = i
	}

	c := newDeclarationComparator(t, nil)
	got := sortedNames(c, fields)
	want := []string{"a", "b", "onClick", "...rest"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sorted = %v, want %v", got, want)
	}

	// No stage can move a named entry past the rest entry, even with every
	// stage disabled.
	c = newDeclarationComparator(t, func(o *config.Options) {
		o.ReservedFirst = false
		o.CallbacksLast = false
		o.Shorthand = config.PolicyIgnore
		o.SortAlphabetically = false
	})
	got = sortedNames(c, fields)
	want = []string{"b", "a", "onClick", "...rest"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sorted = %v, want %v", got, want)
	}
}

func TestStableUnderTies(t *testing.T) {
	c := newDeclarationComparator(t, func(o *config.Options) { o.SortAlphabetically = false })

	fields := named("zeta", "onSave", "alpha", "id", "beta")
	got := sortedNames(c, fields)
	want := []string{"id", "zeta", "alpha", "beta", "onSave"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sorted = %v, want %v", got, want)
	}

	ordered := named("zeta", "alpha", "beta")
	if !c.IsOrdered(ordered) {
		t.Error("ties must count as ordered")
	}
}

func TestUnnamedFieldsNeverDecide(t *testing.T) {
	c := newDeclarationComparator(t, nil)
	fields := named("b", "a")
	computed := field.Field{Kind: field.KindNamed, Index: 2}

	if got := c.Compare(computed, fields[0]); got != 0 {
		t.Errorf("Compare(computed, b) = %d, want 0", got)
	}
	if got := c.Compare(fields[1], computed); got != 0 {
		t.Errorf("Compare(a, computed) = %d, want 0", got)
	}
}

func TestTotality(t *testing.T) {
	c := newAttributeComparator(t, func(o *config.Options) { o.Multiline = config.PolicyFirst })
	fields := named("id", "key", "~disabled", "*onClick", "onChange", "className", "aria-label", "data", "submitHandler", "Zed", "zed", "~hidden=")

	for _, a := range fields {
		for _, b := range fields {
			ab := c.Compare(a, b)
			ba := c.Compare(b, a)
			if ab < -1 || ab > 1 {
				t.Errorf("Compare(%s, %s) = %d out of range", a.Name, b.Name, ab)
			}
			if ab != -ba {
				t.Errorf("Compare(%s, %s) = %d but Compare(%s, %s) = %d", a.Name, b.Name, ab, b.Name, a.Name, ba)
			}
		}
	}

	for _, a := range fields {
		for _, b := range fields {
			for _, x := range fields {
				if c.Compare(a, b) <= 0 && c.Compare(b, x) <= 0 && c.Compare(a, x) > 0 {
					t.Errorf("not transitive: %s <= %s <= %s but %s > %s", a.Name, b.Name, x.Name, a.Name, x.Name)
				}
			}
		}
	}
}

func TestAttributeStages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Options)
		fields []string
		want   []string
	}{
		{
			name:   "reserved then shorthand then callbacks",
			fields: []string{"onClick", "title", "~disabled", "className", "key"},
			want:   []string{"className", "key", "disabled", "title", "onClick"},
		},
		{
			name:   "shorthand ignored",
			mutate: func(o *config.Options) { o.Shorthand = config.PolicyIgnore },
			fields: []string{"title", "~disabled"},
			want:   []string{"disabled", "title"},
		},
		{
			name:   "shorthand last",
			mutate: func(o *config.Options) { o.Shorthand = config.PolicyLast },
			fields: []string{"~disabled", "title"},
			want:   []string{"title", "disabled"},
		},
		{
			name:   "multiline first",
			mutate: func(o *config.Options) { o.Multiline = config.PolicyFirst },
			fields: []string{"alpha", "*style", "*render"},
			want:   []string{"style", "render", "alpha"},
		},
		{
			name:   "multiline last",
			mutate: func(o *config.Options) { o.Multiline = config.PolicyLast },
			fields: []string{"*zeta", "alpha"},
			want:   []string{"alpha", "zeta"},
		},
		{
			name:   "pattern mode has no implicit suffix",
			fields: []string{"submitHandler", "renderItem", "onClick"},
			want:   []string{"renderItem", "onClick", "submitHandler"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newAttributeComparator(t, tt.mutate)
			if got := sortedNames(c, named(tt.fields...)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sorted = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIgnoreCaseAndLocale(t *testing.T) {
	c := newAttributeComparator(t, func(o *config.Options) { o.IgnoreCase = true })
	if got := c.Compare(named("Ab")[0], named("ab")[0]); got != 0 {
		t.Errorf("ignoreCase Compare(Ab, ab) = %d, want 0", got)
	}

	c = newAttributeComparator(t, nil)
	if got := c.Compare(named("Ab")[0], named("ab")[0]); got == 0 {
		t.Error("case-sensitive Compare(Ab, ab) should not tie")
	}

	fields := named("zebra", "äpple")
	c = newAttributeComparator(t, nil)
	if got := sortedNames(c, fields); !reflect.DeepEqual(got, []string{"äpple", "zebra"}) {
		t.Errorf("root collation sorted = %v", got)
	}

	c = newAttributeComparator(t, func(o *config.Options) { o.Locale = "sv" })
	if got := sortedNames(c, fields); !reflect.DeepEqual(got, []string{"zebra", "äpple"}) {
		t.Errorf("swedish collation sorted = %v", got)
	}
}

func TestDisabledStagesAreDropped(t *testing.T) {
	c := newAttributeComparator(t, func(o *config.Options) {
		o.ReservedFirst = false
		o.CallbacksLast = false
		o.Shorthand = config.PolicyIgnore
	})
	want := []Stage{StageRest, StageAlphabetical}
	if got := c.Stages(); !reflect.DeepEqual(got, want) {
		t.Errorf("Stages() = %v, want %v", got, want)
	}
}

func TestCheck(t *testing.T) {
	c := newDeclarationComparator(t, nil)

	if perm, needs := c.Check(named("id", "a", "onClick")); needs || perm != nil {
		t.Errorf("ordered list reported as needing sort: %v", perm)
	}

	perm, needs := c.Check(named("onClick", "id", "a"))
	if !needs {
		t.Fatal("unordered list not detected")
	}
	if want := []int{1, 2, 0}; !reflect.DeepEqual(perm, want) {
		t.Errorf("perm = %v, want %v", perm, want)
	}

	if _, needs := c.Check(named("solo")); needs {
		t.Error("single field can never need sorting")
	}
}

func TestMovedUsesIdentity(t *testing.T) {
	if Moved([]int{0, 1, 2}) {
		t.Error("identity reported as moved")
	}
	if !Moved([]int{1, 0, 2}) {
		t.Error("swap not reported as moved")
	}
}
