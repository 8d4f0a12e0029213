package names

import "testing"

func TestToClass(t *testing.T) {
	tests := []struct {
		in   string
		want Class
	}{
		{"WARRIOR", Warrior},
		{"warrior", Warrior},
		{" Sage ", Sage},
		{"ALL", ClassNone}, // ALL is a target, not a class
		{"NECROMANCER", ClassNone},
		{"", ClassNone},
	}
	for _, tt := range tests {
		if got := ToClass(tt.in); got != tt.want {
			t.Errorf("ToClass(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToTarget(t *testing.T) {
	if got := ToTarget("all"); got != ClassAll {
		t.Errorf("ToTarget(all) = %q, want ALL", got)
	}
	if got := ToTarget("TRICKSTER"); got != Trickster {
		t.Errorf("ToTarget(TRICKSTER) = %q, want TRICKSTER", got)
	}
	if got := ToTarget("nobody"); got != ClassNone {
		t.Errorf("ToTarget(nobody) = %q, want none", got)
	}
}

func TestToAttributeUnderscores(t *testing.T) {
	if got := ToAttribute("PSYCHIC_ABILITY"); got != PsychicAbility {
		t.Errorf("ToAttribute(PSYCHIC_ABILITY) = %q, want %q", got, PsychicAbility)
	}
	if got := ToAttribute("fighting prowess"); got != FightingProwess {
		t.Errorf("ToAttribute(fighting prowess) = %q", got)
	}
}

func TestContainers(t *testing.T) {
	content, ok := ContainerContent(Quiver)
	if !ok || content != Arrow {
		t.Errorf("ContainerContent(QUIVER) = %q, %v", content, ok)
	}
	if _, ok := ContainerContent(Sword); ok {
		t.Error("SWORD should not be a container")
	}
	c, ok := ContainerFor(Gold)
	if !ok || c != MoneyPouch {
		t.Errorf("ContainerFor(GOLD) = %q, %v", c, ok)
	}
}

func TestUnknownNamesResolveToNone(t *testing.T) {
	if ToItem("VORPAL BLADE") != ItemNone {
		t.Error("unknown item should resolve to none")
	}
	if ToStatus("SLEEPY") != StatusNone {
		t.Error("unknown status should resolve to none")
	}
	if ToSpell("FIREBALL") != SpellNone {
		t.Error("unknown spell should resolve to none")
	}
	if ToAsset("BANNER") != AssetNone {
		t.Error("unknown asset should resolve to none")
	}
}
