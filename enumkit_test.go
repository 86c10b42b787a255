package enumkit

import (
	"fmt"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/bearlytools/enumkit/errors"
)

// Permission is a flag set.
type Permission uint8

const (
	PermNone    Permission = 0
	PermRead    Permission = 1
	PermWrite   Permission = 2
	PermExecute Permission = 4
)

var permissions = MustRegister(
	[]Member[Permission]{
		{Name: "None", Value: PermNone},
		{Name: "Read", Value: PermRead},
		{Name: "Write", Value: PermWrite},
		{Name: "Execute", Value: PermExecute},
	},
	WithFlags(),
	WithName("Permission"),
	WithAttributes[Permission](AttributeMap[Permission]{
		PermRead:    {DisplayName: "Read access", Description: "May read the resource."},
		PermExecute: {Description: "May run the resource."},
	}),
)

// Level is not a flag set and declares Mid twice.
type Level int16

const (
	LevelLow  Level = 1
	LevelMid  Level = 5
	LevelHigh Level = 10
)

var levels = MustRegister([]Member[Level]{
	{Name: "Low", Value: LevelLow},
	{Name: "Mid", Value: LevelMid},
	{Name: "High", Value: LevelHigh},
	{Name: "Medium", Value: LevelMid},
})

// Signal is a signed flag set that uses the sign bit as a flag.
type Signal int8

const (
	SignalA    Signal = 1
	SignalB    Signal = 2
	SignalC    Signal = 4
	SignalSign Signal = -128
)

var signals = MustRegister(
	[]Member[Signal]{
		{Name: "A", Value: SignalA},
		{Name: "B", Value: SignalB},
		{Name: "C", Value: SignalC},
		{Name: "Sign", Value: SignalSign},
	},
	WithFlags(),
)

// Hollow declares nothing.
type Hollow uint32

var hollow = MustRegister[Hollow](nil)

// initLogger is read during package variable initialization, like the handles above.
var initLogger = logger()

func TestPackageVarInit(t *testing.T) {
	if initLogger == nil {
		t.Errorf("TestPackageVarInit: logger() returned nil during variable initialization")
	}
	if permissions == nil || levels == nil || signals == nil || hollow == nil {
		t.Errorf("TestPackageVarInit: a package level MustRegister returned nil")
	}
	if h, ok := Of[Signal](); !ok || h != signals {
		t.Errorf("TestPackageVarInit: Of[Signal]() did not find the package level registration")
	}
}

func TestRegister(t *testing.T) {
	if got, want := permissions.Name(), "Permission"; got != want {
		t.Errorf("TestRegister: Name() got %q, want %q", got, want)
	}
	if got, want := levels.Name(), "enumkit.Level"; got != want {
		t.Errorf("TestRegister: default Name() got %q, want %q", got, want)
	}
	if got := permissions.Kind(); got != KindUint8 {
		t.Errorf("TestRegister: Kind() got %s, want %s", got, KindUint8)
	}
	if got := levels.Size(); got != 16 {
		t.Errorf("TestRegister: Size() got %d, want 16", got)
	}
	if !permissions.IsFlags() || levels.IsFlags() {
		t.Errorf("TestRegister: IsFlags() got %v/%v, want true/false", permissions.IsFlags(), levels.IsFlags())
	}
	if got := levels.Len(); got != 4 {
		t.Errorf("TestRegister: Len() got %d, want 4", got)
	}
	if got := levels.Member(3); got.Name != "Medium" || got.Value != LevelMid {
		t.Errorf("TestRegister: Member(3) got %+v", got)
	}

	h, ok := Of[Permission]()
	if !ok || h != permissions {
		t.Errorf("TestRegister: Of[Permission]() did not return the registered handle")
	}
	type neverRegistered uint8
	if _, ok := Of[neverRegistered](); ok {
		t.Errorf("TestRegister: Of[neverRegistered]() got ok == true")
	}
}

func TestRegisterSnapshot(t *testing.T) {
	type snap uint16

	members := []Member[snap]{{Name: "One", Value: 1}, {Name: "Two", Value: 2}}
	e, err := Register(members)
	if err != nil {
		t.Fatalf("TestRegisterSnapshot: got err == %s", err)
	}
	members[0] = Member[snap]{Name: "Changed", Value: 99}

	if _, ok := e.ByName("One"); !ok {
		t.Errorf("TestRegisterSnapshot: declaration changed after registration")
	}
	if _, ok := e.ByName("Changed"); ok {
		t.Errorf("TestRegisterSnapshot: declaration changed after registration")
	}

	got := e.Members()
	got[0].Name = "Mutated"
	if e.Member(0).Name != "One" {
		t.Errorf("TestRegisterSnapshot: Members() returned the internal slice")
	}
}

func TestRegisterErrors(t *testing.T) {
	type pointer uintptr
	type dup uint8
	type twice int32
	type mismatched int64
	type unnamed uint8
	type padded uint8
	type listed uint8

	if _, err := Register([]Member[twice]{{Name: "A", Value: 1}}); err != nil {
		t.Fatalf("TestRegisterErrors: first registration failed: %s", err)
	}

	tests := []struct {
		name     string
		register func() error
		want     error
	}{
		{
			name: "Error: uintptr has no bit operations",
			register: func() error {
				_, err := Register([]Member[pointer]{{Name: "A", Value: 1}})
				return err
			},
			want: ErrUnsupportedKind,
		},
		{
			name: "Error: duplicate name",
			register: func() error {
				_, err := Register([]Member[dup]{{Name: "A", Value: 1}, {Name: "A", Value: 2}})
				return err
			},
			want: ErrRegistration,
		},
		{
			name: "Error: type registered twice",
			register: func() error {
				_, err := Register([]Member[twice]{{Name: "B", Value: 2}})
				return err
			},
			want: ErrRegistration,
		},
		{
			name: "Error: attributes for another type",
			register: func() error {
				_, err := Register(
					[]Member[mismatched]{{Name: "A", Value: 1}},
					WithAttributes[Level](AttributeMap[Level]{}),
				)
				return err
			},
			want: ErrRegistration,
		},
		{
			name: "Error: empty name",
			register: func() error {
				_, err := Register([]Member[unnamed]{{Name: "", Value: 1}})
				return err
			},
			want: ErrRegistration,
		},
		{
			name: "Error: leading space in name",
			register: func() error {
				_, err := Register([]Member[padded]{{Name: " Pad", Value: 1}})
				return err
			},
			want: ErrRegistration,
		},
		{
			name: "Error: trailing space in name",
			register: func() error {
				_, err := Register([]Member[padded]{{Name: "Pad\t", Value: 1}})
				return err
			},
			want: ErrRegistration,
		},
		{
			name: "Error: comma in a flag name",
			register: func() error {
				_, err := Register([]Member[listed]{{Name: "Read,Write", Value: 1}}, WithFlags())
				return err
			},
			want: ErrRegistration,
		},
	}

	for _, test := range tests {
		err := test.register()
		if err == nil {
			t.Errorf("TestRegisterErrors(%s): got err == nil, want err != nil", test.name)
			continue
		}
		if !errors.Is(err, test.want) {
			t.Errorf("TestRegisterErrors(%s): got err == %v, want %v", test.name, err, test.want)
		}
		var e errors.Error
		if !errors.As(err, &e) {
			t.Errorf("TestRegisterErrors(%s): error is not an errors.Error", test.name)
		}
	}

	if _, ok := Of[pointer](); ok {
		t.Errorf("TestRegisterErrors: failed registration was stored")
	}
}

func TestMustRegisterPanics(t *testing.T) {
	type pointer uintptr

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("TestMustRegisterPanics: MustRegister did not panic")
		}
	}()
	MustRegister([]Member[pointer]{{Name: "A", Value: 1}})
}

func TestDescriptor(t *testing.T) {
	if v, ok := levels.ByName("Medium"); !ok || v != LevelMid {
		t.Errorf("TestDescriptor: ByName(Medium) got (%d, %v), want (5, true)", v, ok)
	}
	if _, ok := levels.ByName("medium"); ok {
		t.Errorf("TestDescriptor: ByName(medium) matched, ByName must be case sensitive")
	}
	if name, ok := levels.NameOf(LevelMid); !ok || name != "Mid" {
		t.Errorf("TestDescriptor: NameOf(5) got (%q, %v), want (Mid, true)", name, ok)
	}
	if _, ok := levels.NameOf(7); ok {
		t.Errorf("TestDescriptor: NameOf(7) got ok == true")
	}
	if got := levels.Zero(); got != 0 {
		t.Errorf("TestDescriptor: Zero() got %d, want 0", got)
	}
}

func TestAttributes(t *testing.T) {
	tests := []struct {
		name     string
		value    Permission
		wantName string
		wantOK   bool
		wantDesc string
		wantDOK  bool
	}{
		{name: "both set", value: PermRead, wantName: "Read access", wantOK: true, wantDesc: "May read the resource.", wantDOK: true},
		{name: "description only", value: PermExecute, wantDesc: "May run the resource.", wantDOK: true},
		{name: "nothing registered", value: PermWrite},
	}

	for _, test := range tests {
		name, ok := permissions.DisplayName(test.value)
		if name != test.wantName || ok != test.wantOK {
			t.Errorf("TestAttributes(%s): DisplayName got (%q, %v), want (%q, %v)", test.name, name, ok, test.wantName, test.wantOK)
		}
		desc, ok := permissions.Description(test.value)
		if desc != test.wantDesc || ok != test.wantDOK {
			t.Errorf("TestAttributes(%s): Description got (%q, %v), want (%q, %v)", test.name, desc, ok, test.wantDesc, test.wantDOK)
		}
	}

	if _, ok := levels.DisplayName(LevelLow); ok {
		t.Errorf("TestAttributes: DisplayName on a type without attributes got ok == true")
	}
	if _, ok := levels.Description(LevelLow); ok {
		t.Errorf("TestAttributes: Description on a type without attributes got ok == true")
	}
}

// TestConcurrentFirstAccess races many goroutines on a type whose lazy fields have never been
// built and checks that everyone sees the same metadata.
func TestConcurrentFirstAccess(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	type raced uint64

	members := make([]Member[raced], 0, 64)
	for i := 0; i < 64; i++ {
		members = append(members, Member[raced]{Name: fmt.Sprintf("Bit%02d", i), Value: raced(1) << i})
	}
	e := MustRegister(members, WithFlags())

	type snapshot struct {
		Values []raced
		Names  []string
		Mask   raced
	}

	const workers = 32
	results := make([]snapshot, workers)
	start := make(chan struct{})
	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			<-start
			mask, err := e.FlagsMask()
			if err != nil {
				return err
			}
			results[i] = snapshot{Values: e.Values(), Names: e.Names(), Mask: mask}
			return nil
		})
	}
	close(start)
	if err := g.Wait(); err != nil {
		t.Fatalf("TestConcurrentFirstAccess: got err == %s", err)
	}

	want := snapshot{Values: e.Values(), Names: e.Names(), Mask: ^raced(0)}
	for _, got := range results {
		if diff := pretty.Compare(want, got); diff != "" {
			t.Errorf("TestConcurrentFirstAccess: -want/+got:\n%s", diff)
		}
	}
}
