package effect_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/gangsheet/internal/game/effect"
	"github.com/cory-johannsen/gangsheet/internal/game/ruleset"
)

func TestParseCategory(t *testing.T) {
	cases := map[string]effect.Category{
		"injury":        effect.Injury,
		"Gene_Smithing": effect.GeneSmithing,
		"rig glitch":    effect.RigGlitch,
		" POWER-BOOST ": effect.PowerBoost,
	}
	for in, want := range cases {
		got, err := effect.ParseCategory(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got)
	}
	_, err := effect.ParseCategory("mutation")
	assert.True(t, errors.Is(err, effect.ErrUnknownCategory))
}

func TestCategories_ClosedSetOfEleven(t *testing.T) {
	all := effect.Categories()
	assert.Len(t, all, 11)
	for _, c := range all {
		assert.True(t, c.Valid(), "category %q", c)
	}
}

func TestNew_AssignsUUIDWhenIDBlank(t *testing.T) {
	e, err := effect.New("", "Bionic Arm", effect.Bionic, []effect.Modifier{{Characteristic: ruleset.Strength, Delta: 1}})
	require.NoError(t, err)
	_, parseErr := uuid.Parse(e.ID())
	assert.NoError(t, parseErr)
	assert.Equal(t, "Bionic Arm", e.Name())
}

func TestNew_KeepsExplicitID(t *testing.T) {
	e, err := effect.New("adv-1", "", effect.Advancement, nil)
	require.NoError(t, err)
	assert.Equal(t, "adv-1", e.ID())
	assert.Equal(t, "adv-1", e.Name(), "name falls back to id")
	assert.Empty(t, e.Modifiers())
	assert.False(t, e.TargetsWeapons())
}

func TestNew_RejectsUnknownCategory(t *testing.T) {
	_, err := effect.New("x", "", effect.Category("mutation"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, effect.ErrUnknownCategory))
}

func TestNew_RejectsUnknownCharacteristic(t *testing.T) {
	_, err := effect.New("x", "", effect.Injury, []effect.Modifier{{Characteristic: "charisma", Delta: -1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ruleset.ErrUnknownCharacteristic))
}

func TestNew_RejectsMalformedModifiers(t *testing.T) {
	_, err := effect.New("x", "", effect.Injury, []effect.Modifier{{Delta: -1}})
	assert.True(t, errors.Is(err, effect.ErrInvalidModifier))

	_, err = effect.New("x", "", effect.Injury, []effect.Modifier{
		{Characteristic: ruleset.Strength, WeaponField: ruleset.FieldDamage, Delta: 1},
	})
	assert.True(t, errors.Is(err, effect.ErrInvalidModifier))

	_, err = effect.New("x", "", effect.Equipment, []effect.Modifier{{WeaponField: ruleset.FieldDamage, Delta: 1}})
	assert.True(t, errors.Is(err, effect.ErrInvalidModifier), "weapon field without target weapons")

	_, err = effect.New("x", "", effect.Equipment, []effect.Modifier{{WeaponField: "rate", Delta: 1}}, "Lasgun")
	assert.True(t, errors.Is(err, ruleset.ErrUnknownWeaponField))
}

func TestNew_ReportsEveryViolation(t *testing.T) {
	_, err := effect.New("x", "", effect.Category("mutation"), []effect.Modifier{{Characteristic: "luck", Delta: 1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, effect.ErrUnknownCategory))
	assert.True(t, errors.Is(err, ruleset.ErrUnknownCharacteristic))
}

func TestNew_RejectsBlankTarget(t *testing.T) {
	_, err := effect.New("x", "", effect.Equipment, nil, "Lasgun", "  ")
	assert.True(t, errors.Is(err, effect.ErrInvalidEffect))
}

func TestEffect_AccessorsReturnCopies(t *testing.T) {
	mods := []effect.Modifier{{Characteristic: ruleset.Toughness, Delta: -1}}
	e, err := effect.New("inj", "Head Injury", effect.Injury, mods)
	require.NoError(t, err)

	mods[0].Delta = 99
	assert.Equal(t, -1, e.Modifiers()[0].Delta, "constructor copies input")

	got := e.Modifiers()
	got[0].Delta = 42
	assert.Equal(t, -1, e.Modifiers()[0].Delta, "accessor returns a copy")

	w, err := effect.New("sight", "", effect.Equipment, nil, "Lasgun")
	require.NoError(t, err)
	targets := w.TargetWeapons()
	targets[0] = "Autogun"
	assert.Equal(t, []string{"Lasgun"}, w.TargetWeapons())
}

func TestEffect_TargetsUsesNormalizedNames(t *testing.T) {
	e, err := effect.New("sight", "Telescopic Sight", effect.Equipment,
		[]effect.Modifier{{WeaponField: ruleset.FieldAccuracyLong, Delta: 1}}, "Lasgun")
	require.NoError(t, err)
	assert.True(t, e.TargetsWeapons())
	assert.True(t, e.Targets("lasgun"))
	assert.True(t, e.Targets("Lasgun (Hotshot)"))
	assert.False(t, e.Targets("Laspistol"))
}

func TestEffect_QualifiedTargetHitsOnlyThatVersion(t *testing.T) {
	e, err := effect.New("pack", "Hotshot Pack", effect.Equipment,
		[]effect.Modifier{{WeaponField: ruleset.FieldDamage, Delta: 1}}, "Lasgun (Hotshot)")
	require.NoError(t, err)
	assert.True(t, e.Targets("lasgun (HOTSHOT)"))
	assert.False(t, e.Targets("Lasgun"))
	assert.False(t, e.Targets("Lasgun (Standard)"))
}

func TestModifier_String(t *testing.T) {
	assert.Equal(t, "+1 S", effect.Modifier{Characteristic: ruleset.Strength, Delta: 1}.String())
	assert.Equal(t, "-2 Ld", effect.Modifier{Characteristic: ruleset.Leadership, Delta: -2}.String())
	assert.Equal(t, "-1 AP", effect.Modifier{WeaponField: ruleset.FieldArmourPenetration, Delta: -1}.String())
	assert.Equal(t, "+1 damage", effect.Modifier{WeaponField: ruleset.FieldDamage, Delta: 1}.String())
}

func TestSpec_Build(t *testing.T) {
	e, err := effect.Spec{
		ID:       "adv-7",
		Name:     "Characteristic Increase",
		Category: "Advancement",
		Modifiers: []effect.ModifierSpec{
			{Characteristic: "WS", Delta: -1},
			{Characteristic: "cool", Delta: -1},
		},
	}.Build()
	require.NoError(t, err)
	assert.Equal(t, effect.Advancement, e.Category())
	require.Len(t, e.Modifiers(), 2)
	assert.Equal(t, ruleset.WeaponSkill, e.Modifiers()[0].Characteristic)
}

func TestSpec_Build_WeaponField(t *testing.T) {
	e, err := effect.Spec{
		Category:      "equipment",
		Modifiers:     []effect.ModifierSpec{{WeaponField: "ap", Delta: -1}},
		TargetWeapons: []string{"Boltgun"},
	}.Build()
	require.NoError(t, err)
	assert.Equal(t, ruleset.FieldArmourPenetration, e.Modifiers()[0].WeaponField)
}

func TestSpec_Build_RejectsMalformed(t *testing.T) {
	_, err := effect.Spec{Category: "mutation", Modifiers: []effect.ModifierSpec{{Characteristic: "luck", Delta: 1}}}.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, effect.ErrUnknownCategory))
	assert.True(t, errors.Is(err, ruleset.ErrUnknownCharacteristic))
}

func TestNewSet_GroupsByCategory(t *testing.T) {
	s, err := effect.NewSet(
		effect.Spec{ID: "a", Category: "bionic", Modifiers: []effect.ModifierSpec{{Characteristic: "strength", Delta: 1}}},
		effect.Spec{ID: "b", Category: "injury", Modifiers: []effect.ModifierSpec{{Characteristic: "strength", Delta: -1}}},
		effect.Spec{ID: "c", Category: "injury"},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.Len(t, s[effect.Injury], 2)

	ids := make([]string, 0, 3)
	for _, e := range s.All() {
		ids = append(ids, e.ID())
	}
	assert.Equal(t, []string{"b", "c", "a"}, ids, "injury precedes bionic in display order")
}

func TestNewSet_RejectsWholeBatch(t *testing.T) {
	s, err := effect.NewSet(
		effect.Spec{ID: "ok", Category: "skill"},
		effect.Spec{ID: "bad", Category: "skill", Modifiers: []effect.ModifierSpec{{Characteristic: "luck", Delta: 1}}},
	)
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestSet_AllIncludesStrayKeys(t *testing.T) {
	e, err := effect.New("a", "", effect.User, nil)
	require.NoError(t, err)
	s := effect.Set{"legacy": {e}}
	assert.Len(t, s.All(), 1)
}

func TestSet_CloneIsIndependent(t *testing.T) {
	e, err := effect.New("a", "", effect.User, nil)
	require.NoError(t, err)
	s := effect.Set{}
	s.Add(e)
	c := s.Clone()
	c.Add(e)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, c.Len())
}

func TestPropertyNew_ValidInputsAlwaysBuild(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		category := rapid.SampledFrom(effect.Categories()).Draw(t, "category")
		n := rapid.IntRange(0, 5).Draw(t, "n")
		mods := make([]effect.Modifier, n)
		for i := range mods {
			mods[i] = effect.Modifier{
				Characteristic: rapid.SampledFrom(ruleset.Characteristics()).Draw(t, "characteristic"),
				Delta:          rapid.IntRange(-3, 3).Draw(t, "delta"),
			}
		}
		e, err := effect.New("", "", category, mods)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if len(e.Modifiers()) != n {
			t.Fatalf("got %d modifiers, want %d", len(e.Modifiers()), n)
		}
	})
}
