package protocol

import (
	"fmt"

	"github.com/oryxlabs/realmcore/pkg/wire"
)

// StatType is the closed, sparse byte enumeration of player/object stat
// kinds. Each enumerator is either a string stat or an integer stat; the
// byte values below are a frozen property of the wire format and are
// stable across client builds.
type StatType uint8

const (
	MaxHPStat                 StatType = 0
	HPStat                    StatType = 1
	SizeStat                  StatType = 2
	MaxMPStat                 StatType = 3
	MPStat                    StatType = 4
	NextLevelExpStat          StatType = 5
	ExpStat                   StatType = 6
	LevelStat                 StatType = 7
	Inventory0Stat            StatType = 8
	Inventory1Stat            StatType = 9
	Inventory2Stat            StatType = 10
	Inventory3Stat            StatType = 11
	Inventory4Stat            StatType = 12
	Inventory5Stat            StatType = 13
	Inventory6Stat            StatType = 14
	Inventory7Stat            StatType = 15
	Inventory8Stat            StatType = 16
	Inventory9Stat            StatType = 17
	Inventory10Stat           StatType = 18
	Inventory11Stat           StatType = 19
	AttackStat                StatType = 20
	DefenseStat               StatType = 21
	SpeedStat                 StatType = 22
	VitalityStat              StatType = 26
	WisdomStat                StatType = 27
	DexterityStat             StatType = 28
	ConditionStat             StatType = 29
	NumStarsStat              StatType = 30
	NameStat                  StatType = 31
	Tex1Stat                  StatType = 32
	Tex2Stat                  StatType = 33
	MerchandiseTypeStat       StatType = 34
	CreditsStat               StatType = 35
	MerchandisePriceStat      StatType = 36
	ActiveStat                StatType = 37
	AccountIDStat             StatType = 38
	FameStat                  StatType = 39
	MerchandiseCurrencyStat   StatType = 40
	ConnectStat               StatType = 41
	MerchandiseCountStat      StatType = 42
	MerchandiseMinsLeftStat   StatType = 43
	MerchandiseDiscountStat   StatType = 44
	MerchandiseRankReqStat    StatType = 45
	MaxHPBoostStat            StatType = 46
	MaxMPBoostStat            StatType = 47
	AttackBoostStat           StatType = 48
	DefenseBoostStat          StatType = 49
	SpeedBoostStat            StatType = 50
	VitalityBoostStat         StatType = 51
	WisdomBoostStat           StatType = 52
	DexterityBoostStat        StatType = 53
	OwnerAccountIDStat        StatType = 54
	RankRequiredStat          StatType = 55
	NameChosenStat            StatType = 56
	CurrFameStat              StatType = 57
	NextClassQuestFameStat    StatType = 58
	LegendaryRankStat         StatType = 59
	SinkLevelStat             StatType = 60
	AltTextureStat            StatType = 61
	GuildNameStat             StatType = 62
	GuildRankStat             StatType = 63
	BreathStat                StatType = 64
	XPBoostedStat             StatType = 65
	XPTimerStat               StatType = 66
	LDTimerStat               StatType = 67
	LTTimerStat               StatType = 68
	HealthPotionStackStat     StatType = 69
	MagicPotionStackStat      StatType = 70
	Backpack0Stat             StatType = 71
	Backpack1Stat             StatType = 72
	Backpack2Stat             StatType = 73
	Backpack3Stat             StatType = 74
	Backpack4Stat             StatType = 75
	Backpack5Stat             StatType = 76
	Backpack6Stat             StatType = 77
	Backpack7Stat             StatType = 78
	HasBackpackStat           StatType = 79
	TextureStat               StatType = 80
	PetInstanceIDStat         StatType = 81
	PetNameStat               StatType = 82
	PetTypeStat               StatType = 83
	PetRarityStat             StatType = 84
	PetMaxAbilityPowerStat    StatType = 85
	PetFamilyStat             StatType = 86
	PetFirstAbilityPointStat  StatType = 87
	PetSecondAbilityPointStat StatType = 88
	PetThirdAbilityPointStat  StatType = 89
	PetFirstAbilityPowerStat  StatType = 90
	PetSecondAbilityPowerStat StatType = 91
	PetThirdAbilityPowerStat  StatType = 92
	PetFirstAbilityTypeStat   StatType = 93
	PetSecondAbilityTypeStat  StatType = 94
	PetThirdAbilityTypeStat   StatType = 95
	NewConStat                StatType = 96
	FortuneTokenStat          StatType = 97
	SupporterPointsStat       StatType = 98
	SupporterStat             StatType = 99
)

// stringStats is the subset of stat types whose value is a length-prefixed
// string rather than a 32-bit integer.
var stringStats = map[StatType]bool{
	NameStat:           true,
	AccountIDStat:      true,
	OwnerAccountIDStat: true,
	GuildNameStat:      true,
	PetNameStat:        true,
}

// validStats is the set of byte values with an assigned enumerator.
var validStats = buildValidStats()

func buildValidStats() map[uint8]StatType {
	m := map[uint8]StatType{}
	for _, s := range []StatType{
		MaxHPStat, HPStat, SizeStat, MaxMPStat, MPStat, NextLevelExpStat, ExpStat, LevelStat,
		Inventory0Stat, Inventory1Stat, Inventory2Stat, Inventory3Stat, Inventory4Stat,
		Inventory5Stat, Inventory6Stat, Inventory7Stat, Inventory8Stat, Inventory9Stat,
		Inventory10Stat, Inventory11Stat, AttackStat, DefenseStat, SpeedStat, VitalityStat,
		WisdomStat, DexterityStat, ConditionStat, NumStarsStat, NameStat, Tex1Stat, Tex2Stat,
		MerchandiseTypeStat, CreditsStat, MerchandisePriceStat, ActiveStat, AccountIDStat,
		FameStat, MerchandiseCurrencyStat, ConnectStat, MerchandiseCountStat,
		MerchandiseMinsLeftStat, MerchandiseDiscountStat, MerchandiseRankReqStat,
		MaxHPBoostStat, MaxMPBoostStat, AttackBoostStat, DefenseBoostStat, SpeedBoostStat,
		VitalityBoostStat, WisdomBoostStat, DexterityBoostStat, OwnerAccountIDStat,
		RankRequiredStat, NameChosenStat, CurrFameStat, NextClassQuestFameStat,
		LegendaryRankStat, SinkLevelStat, AltTextureStat, GuildNameStat, GuildRankStat,
		BreathStat, XPBoostedStat, XPTimerStat, LDTimerStat, LTTimerStat,
		HealthPotionStackStat, MagicPotionStackStat, Backpack0Stat, Backpack1Stat,
		Backpack2Stat, Backpack3Stat, Backpack4Stat, Backpack5Stat, Backpack6Stat,
		Backpack7Stat, HasBackpackStat, TextureStat, PetInstanceIDStat, PetNameStat,
		PetTypeStat, PetRarityStat, PetMaxAbilityPowerStat, PetFamilyStat,
		PetFirstAbilityPointStat, PetSecondAbilityPointStat, PetThirdAbilityPointStat,
		PetFirstAbilityPowerStat, PetSecondAbilityPowerStat, PetThirdAbilityPowerStat,
		PetFirstAbilityTypeStat, PetSecondAbilityTypeStat, PetThirdAbilityTypeStat,
		NewConStat, FortuneTokenStat, SupporterPointsStat, SupporterStat,
	} {
		m[uint8(s)] = s
	}
	return m
}

// StatTypeFromByte converts a byte to a StatType, reporting whether the
// byte has an assigned enumerator.
func StatTypeFromByte(b uint8) (StatType, bool) {
	s, ok := validStats[b]
	return s, ok
}

// IsString reports whether this stat type's value is a length-prefixed
// string rather than a 32-bit integer.
func (s StatType) IsString() bool {
	return stringStats[s]
}

// StatData is a tagged stat value: a StatType paired with either its
// string or integer payload, matching whichever the type declares.
type StatData struct {
	Type      StatType
	AsString  string
	AsInteger int32
}

// DecodeStatData reads the stat type byte, then the payload it declares.
func DecodeStatData(r *wire.Reader) StatData {
	typByte := r.ReadU8()
	if r.Err() != nil {
		return StatData{}
	}
	typ, ok := StatTypeFromByte(typByte)
	if !ok {
		r.Fail(&wire.InvalidDataError{Message: fmt.Sprintf("unknown stat type: %d", typByte)})
		return StatData{}
	}
	if typ.IsString() {
		s := r.ReadString(wire.Prefix16)
		return StatData{Type: typ, AsString: s}
	}
	return StatData{Type: typ, AsInteger: r.ReadI32()}
}

// EncodeStatData writes the stat type byte followed by the payload it
// declares.
func EncodeStatData(w *wire.Writer, v StatData) {
	w.WriteU8(uint8(v.Type))
	if v.Type.IsString() {
		w.WriteString(wire.Prefix16, v.AsString)
		return
	}
	w.WriteI32(v.AsInteger)
}
