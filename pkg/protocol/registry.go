package protocol

import "github.com/oryxlabs/realmcore/pkg/wire"

// Side identifies which end of the connection originates a packet kind.
type Side uint8

const (
	ClientSide Side = iota
	ServerSide
)

// Kind is the library's own stable internal identifier for a packet
// shape. Kind values are assigned by position in the registry table
// below and never correspond to a build's wire byte tag directly —
// that correspondence is a per-build Mappings (see mappings.go).
type Kind uint16

// DecodeFunc decodes one packet body (the frame payload minus the wire
// byte tag) into the kind's concrete struct, boxed as any.
type DecodeFunc func(*wire.Reader) any

// EncodeFunc encodes a kind's concrete struct (boxed as any) onto w.
type EncodeFunc func(*wire.Writer, any)

type kindEntry struct {
	name   string
	side   Side
	decode DecodeFunc
	encode EncodeFunc
}

// registry is the single source of truth for kind assignment: Kind(i)
// names registry[i]. Extending the catalogue means appending here, never
// reordering — existing Kind values must stay stable across releases of
// this package since callers may persist them.
var registry = []kindEntry{
	{"AcceptTrade", ClientSide, decodeAcceptTrade, encodeAcceptTrade},
	{"ActivePetUpdateRequest", ClientSide, decodeActivePetUpdateRequest, encodeActivePetUpdateRequest},
	{"AoeAck", ClientSide, decodeAoeAck, encodeAoeAck},
	{"Buy", ClientSide, decodeBuy, encodeBuy},
	{"CancelTrade", ClientSide, decodeCancelTrade, encodeCancelTrade},
	{"ChangeGuildRank", ClientSide, decodeChangeGuildRank, encodeChangeGuildRank},
	{"ChangeTrade", ClientSide, decodeChangeTrade, encodeChangeTrade},
	{"CheckCredits", ClientSide, decodeCheckCredits, encodeCheckCredits},
	{"ChooseName", ClientSide, decodeChooseName, encodeChooseName},
	{"ClaimLoginRewardMsg", ClientSide, decodeClaimLoginRewardMsg, encodeClaimLoginRewardMsg},
	{"Create", ClientSide, decodeCreate, encodeCreate},
	{"CreateGuild", ClientSide, decodeCreateGuild, encodeCreateGuild},
	{"EditAccountList", ClientSide, decodeEditAccountList, encodeEditAccountList},
	{"EnemyHit", ClientSide, decodeEnemyHit, encodeEnemyHit},
	{"EnterArena", ClientSide, decodeEnterArena, encodeEnterArena},
	{"Escape", ClientSide, decodeEscape, encodeEscape},
	{"GotoAck", ClientSide, decodeGotoAck, encodeGotoAck},
	{"GroundDamage", ClientSide, decodeGroundDamage, encodeGroundDamage},
	{"GuildInvite", ClientSide, decodeGuildInvite, encodeGuildInvite},
	{"GuildRemove", ClientSide, decodeGuildRemove, encodeGuildRemove},
	{"Hello", ClientSide, decodeHello, encodeHello},
	{"InvDrop", ClientSide, decodeInvDrop, encodeInvDrop},
	{"InvSwap", ClientSide, decodeInvSwap, encodeInvSwap},
	{"JoinGuild", ClientSide, decodeJoinGuild, encodeJoinGuild},
	{"KeyInfoRequest", ClientSide, decodeKeyInfoRequest, encodeKeyInfoRequest},
	{"Load", ClientSide, decodeLoad, encodeLoad},
	{"Move", ClientSide, decodeMove, encodeMove},
	{"OtherHit", ClientSide, decodeOtherHit, encodeOtherHit},
	{"PetChangeFormMsg", ClientSide, decodePetChangeFormMsg, encodePetChangeFormMsg},
	{"PetChangeSkinMsg", ClientSide, decodePetChangeSkinMsg, encodePetChangeSkinMsg},
	{"PetUpgradeRequest", ClientSide, decodePetUpgradeRequest, encodePetUpgradeRequest},
	{"PlayerHit", ClientSide, decodePlayerHit, encodePlayerHit},
	{"PlayerShoot", ClientSide, decodePlayerShoot, encodePlayerShoot},
	{"PlayerText", ClientSide, decodePlayerText, encodePlayerText},
	{"QuestRedeem", ClientSide, decodeQuestRedeem, encodeQuestRedeem},
	{"QuestRoomMsg", ClientSide, decodeQuestRoomMsg, encodeQuestRoomMsg},
	{"Pong", ClientSide, decodePong, encodePong},
	{"RequestTrade", ClientSide, decodeRequestTrade, encodeRequestTrade},
	{"ResetDailyQuests", ClientSide, decodeResetDailyQuests, encodeResetDailyQuests},
	{"Reskin", ClientSide, decodeReskin, encodeReskin},
	{"SetCondition", ClientSide, decodeSetCondition, encodeSetCondition},
	{"ShootAck", ClientSide, decodeShootAck, encodeShootAck},
	{"SquareHit", ClientSide, decodeSquareHit, encodeSquareHit},
	{"Teleport", ClientSide, decodeTeleport, encodeTeleport},
	{"UpdateAck", ClientSide, decodeUpdateAck, encodeUpdateAck},
	{"UseItem", ClientSide, decodeUseItem, encodeUseItem},
	{"UsePortal", ClientSide, decodeUsePortal, encodeUsePortal},
	{"QuestFetchAsk", ClientSide, decodeQuestFetchAsk, encodeQuestFetchAsk},
	{"AcceptArenaDeath", ClientSide, decodeAcceptArenaDeath, encodeAcceptArenaDeath},

	{"AccountList", ServerSide, decodeAccountList, encodeAccountList},
	{"ActivePetUpdate", ServerSide, decodeActivePetUpdate, encodeActivePetUpdate},
	{"AllyShoot", ServerSide, decodeAllyShoot, encodeAllyShoot},
	{"Aoe", ServerSide, decodeAoe, encodeAoe},
	{"ArenaDeath", ServerSide, decodeArenaDeath, encodeArenaDeath},
	{"BuyResult", ServerSide, decodeBuyResult, encodeBuyResult},
	{"ClientStat", ServerSide, decodeClientStat, encodeClientStat},
	{"CreateSuccess", ServerSide, decodeCreateSuccess, encodeCreateSuccess},
	{"Damage", ServerSide, decodeDamage, encodeDamage},
	{"Death", ServerSide, decodeDeath, encodeDeath},
	{"DeletePet", ServerSide, decodeDeletePet, encodeDeletePet},
	{"EnemyShoot", ServerSide, decodeEnemyShoot, encodeEnemyShoot},
	{"EvolvePet", ServerSide, decodeEvolvePet, encodeEvolvePet},
	{"Failure", ServerSide, decodeFailure, encodeFailure},
	{"File", ServerSide, decodeFile, encodeFile},
	{"GlobalNotification", ServerSide, decodeGlobalNotification, encodeGlobalNotification},
	{"Goto", ServerSide, decodeGoto, encodeGoto},
	{"GuildResult", ServerSide, decodeGuildResult, encodeGuildResult},
	{"HatchPet", ServerSide, decodeHatchPet, encodeHatchPet},
	{"InvResult", ServerSide, decodeInvResult, encodeInvResult},
	{"InvitedToGuild", ServerSide, decodeInvitedToGuild, encodeInvitedToGuild},
	{"ImminentArenaWave", ServerSide, decodeImminentArenaWave, encodeImminentArenaWave},
	{"KeyInfoResponse", ServerSide, decodeKeyInfoResponse, encodeKeyInfoResponse},
	{"LoginRewardMsg", ServerSide, decodeLoginRewardMsg, encodeLoginRewardMsg},
	{"MapInfo", ServerSide, decodeMapInfo, encodeMapInfo},
	{"NameResult", ServerSide, decodeNameResult, encodeNameResult},
	{"NewAbility", ServerSide, decodeNewAbility, encodeNewAbility},
	{"NewTick", ServerSide, decodeNewTick, encodeNewTick},
	{"Notification", ServerSide, decodeNotification, encodeNotification},
	{"PasswordPrompt", ServerSide, decodePasswordPrompt, encodePasswordPrompt},
	{"PetYardUpdate", ServerSide, decodePetYardUpdate, encodePetYardUpdate},
	{"Pic", ServerSide, decodePic, encodePic},
	{"Ping", ServerSide, decodePing, encodePing},
	{"PlaySound", ServerSide, decodePlaySound, encodePlaySound},
	{"QuestObjId", ServerSide, decodeQuestObjID, encodeQuestObjID},
	{"QuestFetchResponse", ServerSide, decodeQuestFetchResponse, encodeQuestFetchResponse},
	{"QuestRedeemResponse", ServerSide, decodeQuestRedeemResponse, encodeQuestRedeemResponse},
	{"RealmHeroLeftMsg", ServerSide, decodeRealmHeroLeftMsg, encodeRealmHeroLeftMsg},
	{"Reconnect", ServerSide, decodeReconnect, encodeReconnect},
	{"ReskinUnlock", ServerSide, decodeReskinUnlock, encodeReskinUnlock},
	{"ServerPlayerShoot", ServerSide, decodeServerPlayerShoot, encodeServerPlayerShoot},
	{"ShowEffect", ServerSide, decodeShowEffect, encodeShowEffect},
	{"Text", ServerSide, decodeText, encodeText},
	{"TradeAccepted", ServerSide, decodeTradeAccepted, encodeTradeAccepted},
	{"TradeChanged", ServerSide, decodeTradeChanged, encodeTradeChanged},
	{"TradeDone", ServerSide, decodeTradeDone, encodeTradeDone},
	{"TradeRequested", ServerSide, decodeTradeRequested, encodeTradeRequested},
	{"TradeStart", ServerSide, decodeTradeStart, encodeTradeStart},
	{"Update", ServerSide, decodeUpdate, encodeUpdate},
	{"VerifyEmail", ServerSide, decodeVerifyEmail, encodeVerifyEmail},
}

// NumKinds is the total number of registered packet kinds.
var NumKinds = len(registry)

// byName resolves a kind from its registry name, built once at package
// init so lookups by name (used by the mapping extractor to match a
// decompiled class name against a known kind) don't scan linearly.
var byName = buildByName()

func buildByName() map[string]Kind {
	m := make(map[string]Kind, len(registry))
	for i, e := range registry {
		m[e.name] = Kind(i)
	}
	return m
}

// KindFromName looks up a registered kind by its exact catalogue name.
func KindFromName(name string) (Kind, bool) {
	k, ok := byName[name]
	return k, ok
}

// Valid reports whether k is an assigned kind.
func (k Kind) Valid() bool {
	return int(k) < len(registry)
}

// Name returns the catalogue name for k, or "" if k is out of range.
func (k Kind) Name() string {
	if !k.Valid() {
		return ""
	}
	return registry[k].name
}

// Side returns which end of the connection originates k.
func (k Kind) Side() Side {
	if !k.Valid() {
		return ClientSide
	}
	return registry[k].side
}

// Decode decodes a packet body for k. Callers must check k.Valid()
// first; decoding an invalid kind panics, matching the package's
// assumption that dispatch only ever reaches here via a Mappings
// lookup that has already validated the kind.
func (k Kind) Decode(r *wire.Reader) any {
	return registry[k].decode(r)
}

// Encode encodes a packet body for k.
func (k Kind) Encode(w *wire.Writer, body any) {
	registry[k].encode(w, body)
}

// KindFromByte converts an internal tag byte back to its Kind,
// reporting whether the byte names an assigned kind. Internal tags are
// assignment-stable, so tag bytes persisted in on-disk captures remain
// valid across rebuilds of this package. This is the internal-tag
// reverse lookup; resolving a build's *wire* byte is Mappings.ToInternal.
func KindFromByte(b uint8) (Kind, bool) {
	k := Kind(b)
	return k, k.Valid()
}

// AllKinds returns every registered kind in assignment order.
func AllKinds() []Kind {
	out := make([]Kind, len(registry))
	for i := range registry {
		out[i] = Kind(i)
	}
	return out
}
