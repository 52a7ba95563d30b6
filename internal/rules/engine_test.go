package rules_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/gangsheet/internal/config"
	"github.com/cory-johannsen/gangsheet/internal/game/catalog"
	"github.com/cory-johannsen/gangsheet/internal/game/effect"
	"github.com/cory-johannsen/gangsheet/internal/game/fighter"
	"github.com/cory-johannsen/gangsheet/internal/game/inventory"
	"github.com/cory-johannsen/gangsheet/internal/game/ruleset"
	"github.com/cory-johannsen/gangsheet/internal/rules"
)

func newEngine(t *testing.T) *rules.Engine {
	t.Helper()
	e, err := rules.FromConfig(config.ContentConfig{}, zap.NewNop())
	require.NoError(t, err)
	return e
}

func TestNewEngine_NilCatalog(t *testing.T) {
	_, err := rules.NewEngine(nil, zap.NewNop())
	assert.True(t, errors.Is(err, rules.ErrNilCatalog))
}

func TestNewEngine_LogsTableSizes(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	core, logs := observer.New(zapcore.InfoLevel)

	_, err = rules.NewEngine(c, zap.New(core))
	require.NoError(t, err)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.EqualValues(t, c.Armour.Len(), fields["armour"])
	assert.Equal(t, "rules", fields["component"])
}

func TestFromConfig_MissingDir(t *testing.T) {
	_, err := rules.FromConfig(config.ContentConfig{Dir: t.TempDir()}, nil)
	assert.Error(t, err)
}

func TestEngine_ResolveArmourSave(t *testing.T) {
	e := newEngine(t)
	cases := []struct {
		items       []string
		final, base int
	}{
		{[]string{"Flak Armour"}, 6, 6},
		{[]string{"Mesh Armour", "Armoured Undersuit"}, 4, 5},
		{[]string{"Armoured Undersuit"}, 5, 6},
		{[]string{"Carapace Armour", "Carapace Armour"}, 4, 4},
	}
	for _, tc := range cases {
		got := e.ResolveArmourSave(inventory.Items(tc.items...))
		require.NotNil(t, got.FinalSave, "%v", tc.items)
		assert.Equal(t, tc.final, *got.FinalSave, "%v", tc.items)
		assert.Equal(t, tc.base, *got.BaseSave, "%v", tc.items)
	}

	got := e.ResolveArmourSave(inventory.Items("Flak Armour"))
	assert.Equal(t, "Flak Armour: 6+", got.Breakdown)

	got = e.ResolveArmourSave(nil)
	assert.Nil(t, got.FinalSave)
	assert.Equal(t, inventory.NoArmour, got.Breakdown)
}

func TestEngine_ComputeCurrentAttributes_NetZero(t *testing.T) {
	e := newEngine(t)
	set, err := effect.NewSet(
		effect.Spec{Category: "bionic", Modifiers: []effect.ModifierSpec{{Characteristic: "strength", Delta: 1}}},
		effect.Spec{Category: "injury", Modifiers: []effect.ModifierSpec{{Characteristic: "strength", Delta: -1}}},
	)
	require.NoError(t, err)

	base := ruleset.Profile{ruleset.Strength: 3}
	got := e.ComputeCurrentAttributes(base, set)
	assert.Equal(t, 3, got[ruleset.Strength])
	assert.Equal(t, ruleset.Profile{ruleset.Strength: 3}, base)
}

func TestEngine_ResolveWeaponOverrides(t *testing.T) {
	e := newEngine(t)
	set, err := effect.NewSet(effect.Spec{
		Name:          "Hotshot Laspack",
		Category:      "equipment",
		Modifiers:     []effect.ModifierSpec{{WeaponField: "ap", Delta: -1}},
		TargetWeapons: []string{"lasgun"},
	})
	require.NoError(t, err)

	weapons := []inventory.WeaponProfile{
		{Name: "Lasgun", RangeShort: 8, RangeLong: 24, Strength: 3},
		{Name: "Stub Gun", RangeShort: 6, RangeLong: 12, Strength: 3},
	}
	got := e.ResolveWeaponOverrides(weapons, set)
	require.Len(t, got, 2)
	assert.Equal(t, -1, got["Lasgun"].Weapon.ArmourPenetration)
	assert.True(t, got["Lasgun"].Modified())
	assert.False(t, got["Stub Gun"].Modified())
	assert.Equal(t, 0, weapons[0].ArmourPenetration)
}

func TestEngine_LookupDescription(t *testing.T) {
	e := newEngine(t)

	d, ok, err := e.LookupDescription(catalog.KindTrait, "RAPID FIRE (2)")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Rapid Fire", d.Name)

	_, ok, err = e.LookupDescription(catalog.KindSkill, "Not A Skill")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = e.LookupDescription(catalog.Kind("mutation"), "x")
	assert.True(t, errors.Is(err, catalog.ErrUnknownKind))
}

func TestEngine_Sheet(t *testing.T) {
	e := newEngine(t)
	f := &fighter.Fighter{
		Name:      "Kal",
		Base:      ruleset.Profile{ruleset.Toughness: 3},
		Effects:   effect.Set{},
		Equipment: inventory.Items("Flak Armour"),
	}
	s := e.Sheet(f)
	assert.Equal(t, "Kal", s.Name)
	assert.Equal(t, 3, s.Current[ruleset.Toughness])
	assert.Equal(t, "6+", s.Armour.String())
}

func TestEngine_ConcurrentUse(t *testing.T) {
	e := newEngine(t)
	items := inventory.Items("Mesh Armour", "Armoured Undersuit")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := e.ResolveArmourSave(items)
			assert.Equal(t, "4+", got.String())
		}()
	}
	wg.Wait()
}
