package rules

import "fmt"

// Focus is a specialization within an ability. Each focus belongs to exactly
// one ability.
type Focus string

const (
	AccuracyArcaneBlast Focus = "AccuracyArcaneBlast"
	AccuracyBlackPowder Focus = "AccuracyBlackPowder"
	AccuracyBows        Focus = "AccuracyBows"
	AccuracyBrawling    Focus = "AccuracyBrawling"
	AccuracyDueling     Focus = "AccuracyDueling"
	AccuracyGrenades    Focus = "AccuracyGrenades"
	AccuracyLightBlades Focus = "AccuracyLightBlades"
	AccuracyStaves      Focus = "AccuracyStaves"
	AccuracySlings      Focus = "AccuracySlings"

	CommunicationAnimalHandling Focus = "CommunicationAnimalHandling"
	CommunicationBargaining     Focus = "CommunicationBargaining"
	CommunicationDeception      Focus = "CommunicationDeception"
	CommunicationDisguise       Focus = "CommunicationDisguise"
	CommunicationEtiquette      Focus = "CommunicationEtiquette"
	CommunicationGambling       Focus = "CommunicationGambling"
	CommunicationInvestigation  Focus = "CommunicationInvestigation"
	CommunicationLeadership     Focus = "CommunicationLeadership"
	CommunicationPerformance    Focus = "CommunicationPerformance"
	CommunicationPersuasion     Focus = "CommunicationPersuasion"
	CommunicationSeduction      Focus = "CommunicationSeduction"

	ConstitutionRowing    Focus = "ConstitutionRowing"
	ConstitutionRunning   Focus = "ConstitutionRunning"
	ConstitutionStamina   Focus = "ConstitutionStamina"
	ConstitutionSwimming  Focus = "ConstitutionSwimming"
	ConstitutionTolerance Focus = "ConstitutionTolerance"

	DexterityAcrobatics  Focus = "DexterityAcrobatics"
	DexterityCalligraphy Focus = "DexterityCalligraphy"
	DexterityCrafting    Focus = "DexterityCrafting"
	DexterityInitiative  Focus = "DexterityInitiative"
	DexterityLegerdemain Focus = "DexterityLegerdemain"
	DexterityLockPicking Focus = "DexterityLockPicking"
	DexterityRiding      Focus = "DexterityRiding"
	DexteritySailing     Focus = "DexteritySailing"
	DexterityStealth     Focus = "DexterityStealth"
	DexterityTraps       Focus = "DexterityTraps"

	FightingAxes        Focus = "FightingAxes"
	FightingBludgeons   Focus = "FightingBludgeons"
	FightingHeavyBlades Focus = "FightingHeavyBlades"
	FightingLances      Focus = "FightingLances"
	FightingPolearms    Focus = "FightingPolearms"
	FightingSpears      Focus = "FightingSpears"

	IntelligenceArcana         Focus = "IntelligenceArcana"
	IntelligenceArcaneLore     Focus = "IntelligenceArcaneLore"
	IntelligenceBrewing        Focus = "IntelligenceBrewing"
	IntelligenceCartography    Focus = "IntelligenceCartography"
	IntelligenceCryptography   Focus = "IntelligenceCryptography"
	IntelligenceCulturalLore   Focus = "IntelligenceCulturalLore"
	IntelligenceEngineering    Focus = "IntelligenceEngineering"
	IntelligenceEvaluation     Focus = "IntelligenceEvaluation"
	IntelligenceHealing        Focus = "IntelligenceHealing"
	IntelligenceHeraldry       Focus = "IntelligenceHeraldry"
	IntelligenceHistoricalLore Focus = "IntelligenceHistoricalLore"
	IntelligenceMilitaryLore   Focus = "IntelligenceMilitaryLore"
	IntelligenceMusicalLore    Focus = "IntelligenceMusicalLore"
	IntelligenceNaturalLore    Focus = "IntelligenceNaturalLore"
	IntelligenceNavigation     Focus = "IntelligenceNavigation"
	IntelligenceReligiousLore  Focus = "IntelligenceReligiousLore"
	IntelligenceResearch       Focus = "IntelligenceResearch"
	IntelligenceThievesLore    Focus = "IntelligenceThievesLore"
	IntelligenceWriting        Focus = "IntelligenceWriting"

	PerceptionEmpathy   Focus = "PerceptionEmpathy"
	PerceptionHearing   Focus = "PerceptionHearing"
	PerceptionSearching Focus = "PerceptionSearching"
	PerceptionSeeing    Focus = "PerceptionSeeing"
	PerceptionSmelling  Focus = "PerceptionSmelling"
	PerceptionTasting   Focus = "PerceptionTasting"
	PerceptionTouching  Focus = "PerceptionTouching"
	PerceptionTracking  Focus = "PerceptionTracking"

	StrengthClimbing     Focus = "StrengthClimbing"
	StrengthDriving      Focus = "StrengthDriving"
	StrengthIntimidation Focus = "StrengthIntimidation"
	StrengthJumping      Focus = "StrengthJumping"
	StrengthMight        Focus = "StrengthMight"
	StrengthSmithing     Focus = "StrengthSmithing"

	WillpowerCourage        Focus = "WillpowerCourage"
	WillpowerFaith          Focus = "WillpowerFaith"
	WillpowerMorale         Focus = "WillpowerMorale"
	WillpowerSelfDiscipline Focus = "WillpowerSelfDiscipline"
)

type focusInfo struct {
	ability Ability
	name    string
}

var focusTable = map[Focus]focusInfo{
	AccuracyArcaneBlast:         {Accuracy, "Arcane Blast"},
	AccuracyBlackPowder:         {Accuracy, "Black Powder"},
	AccuracyBows:                {Accuracy, "Bows"},
	AccuracyBrawling:            {Accuracy, "Brawling"},
	AccuracyDueling:             {Accuracy, "Dueling"},
	AccuracyGrenades:            {Accuracy, "Grenades"},
	AccuracyLightBlades:         {Accuracy, "Light Blades"},
	AccuracyStaves:              {Accuracy, "Staves"},
	AccuracySlings:              {Accuracy, "Slings"},
	CommunicationAnimalHandling: {Communication, "Animal Handling"},
	CommunicationBargaining:     {Communication, "Bargaining"},
	CommunicationDeception:      {Communication, "Deception"},
	CommunicationDisguise:       {Communication, "Disguise"},
	CommunicationEtiquette:      {Communication, "Etiquette"},
	CommunicationGambling:       {Communication, "Gambling"},
	CommunicationInvestigation:  {Communication, "Investigation"},
	CommunicationLeadership:     {Communication, "Leadership"},
	CommunicationPerformance:    {Communication, "Performance"},
	CommunicationPersuasion:     {Communication, "Persuasion"},
	CommunicationSeduction:      {Communication, "Seduction"},
	ConstitutionRowing:          {Constitution, "Rowing"},
	ConstitutionRunning:         {Constitution, "Running"},
	ConstitutionStamina:         {Constitution, "Stamina"},
	ConstitutionSwimming:        {Constitution, "Swimming"},
	ConstitutionTolerance:       {Constitution, "Tolerance"},
	DexterityAcrobatics:         {Dexterity, "Acrobatics"},
	DexterityCalligraphy:        {Dexterity, "Calligraphy"},
	DexterityCrafting:           {Dexterity, "Crafting"},
	DexterityInitiative:         {Dexterity, "Initiative"},
	DexterityLegerdemain:        {Dexterity, "Legerdemain"},
	DexterityLockPicking:        {Dexterity, "Lock Picking"},
	DexterityRiding:             {Dexterity, "Riding"},
	DexteritySailing:            {Dexterity, "Sailing"},
	DexterityStealth:            {Dexterity, "Stealth"},
	DexterityTraps:              {Dexterity, "Traps"},
	FightingAxes:                {Fighting, "Axes"},
	FightingBludgeons:           {Fighting, "Bludgeons"},
	FightingHeavyBlades:         {Fighting, "Heavy Blades"},
	FightingLances:              {Fighting, "Lances"},
	FightingPolearms:            {Fighting, "Polearms"},
	FightingSpears:              {Fighting, "Spears"},
	IntelligenceArcana:          {Intelligence, "Arcana"},
	IntelligenceArcaneLore:      {Intelligence, "Arcane Lore"},
	IntelligenceBrewing:         {Intelligence, "Brewing"},
	IntelligenceCartography:     {Intelligence, "Cartography"},
	IntelligenceCryptography:    {Intelligence, "Cryptography"},
	IntelligenceCulturalLore:    {Intelligence, "Cultural Lore"},
	IntelligenceEngineering:     {Intelligence, "Engineering"},
	IntelligenceEvaluation:      {Intelligence, "Evaluation"},
	IntelligenceHealing:         {Intelligence, "Healing"},
	IntelligenceHeraldry:        {Intelligence, "Heraldry"},
	IntelligenceHistoricalLore:  {Intelligence, "Historical Lore"},
	IntelligenceMilitaryLore:    {Intelligence, "Military Lore"},
	IntelligenceMusicalLore:     {Intelligence, "Musical Lore"},
	IntelligenceNaturalLore:     {Intelligence, "Natural Lore"},
	IntelligenceNavigation:      {Intelligence, "Navigation"},
	IntelligenceReligiousLore:   {Intelligence, "Religious Lore"},
	IntelligenceResearch:        {Intelligence, "Research"},
	IntelligenceThievesLore:     {Intelligence, "Thieves' Lore"},
	IntelligenceWriting:         {Intelligence, "Writing"},
	PerceptionEmpathy:           {Perception, "Empathy"},
	PerceptionHearing:           {Perception, "Hearing"},
	PerceptionSearching:         {Perception, "Searching"},
	PerceptionSeeing:            {Perception, "Seeing"},
	PerceptionSmelling:          {Perception, "Smelling"},
	PerceptionTasting:           {Perception, "Tasting"},
	PerceptionTouching:          {Perception, "Touching"},
	PerceptionTracking:          {Perception, "Tracking"},
	StrengthClimbing:            {Strength, "Climbing"},
	StrengthDriving:             {Strength, "Driving"},
	StrengthIntimidation:        {Strength, "Intimidation"},
	StrengthJumping:             {Strength, "Jumping"},
	StrengthMight:               {Strength, "Might"},
	StrengthSmithing:            {Strength, "Smithing"},
	WillpowerCourage:            {Willpower, "Courage"},
	WillpowerFaith:              {Willpower, "Faith"},
	WillpowerMorale:             {Willpower, "Morale"},
	WillpowerSelfDiscipline:     {Willpower, "Self-Discipline"},
}

var focusOrder = []Focus{
	AccuracyArcaneBlast, AccuracyBlackPowder, AccuracyBows, AccuracyBrawling, AccuracyDueling, AccuracyGrenades, AccuracyLightBlades, AccuracyStaves, AccuracySlings,
	CommunicationAnimalHandling, CommunicationBargaining, CommunicationDeception, CommunicationDisguise, CommunicationEtiquette, CommunicationGambling, CommunicationInvestigation, CommunicationLeadership, CommunicationPerformance, CommunicationPersuasion, CommunicationSeduction,
	ConstitutionRowing, ConstitutionRunning, ConstitutionStamina, ConstitutionSwimming, ConstitutionTolerance,
	DexterityAcrobatics, DexterityCalligraphy, DexterityCrafting, DexterityInitiative, DexterityLegerdemain, DexterityLockPicking, DexterityRiding, DexteritySailing, DexterityStealth, DexterityTraps,
	FightingAxes, FightingBludgeons, FightingHeavyBlades, FightingLances, FightingPolearms, FightingSpears,
	IntelligenceArcana, IntelligenceArcaneLore, IntelligenceBrewing, IntelligenceCartography, IntelligenceCryptography, IntelligenceCulturalLore, IntelligenceEngineering, IntelligenceEvaluation, IntelligenceHealing, IntelligenceHeraldry, IntelligenceHistoricalLore, IntelligenceMilitaryLore, IntelligenceMusicalLore, IntelligenceNaturalLore, IntelligenceNavigation, IntelligenceReligiousLore, IntelligenceResearch, IntelligenceThievesLore, IntelligenceWriting,
	PerceptionEmpathy, PerceptionHearing, PerceptionSearching, PerceptionSeeing, PerceptionSmelling, PerceptionTasting, PerceptionTouching, PerceptionTracking,
	StrengthClimbing, StrengthDriving, StrengthIntimidation, StrengthJumping, StrengthMight, StrengthSmithing,
	WillpowerCourage, WillpowerFaith, WillpowerMorale, WillpowerSelfDiscipline,
}

// Focuses returns every focus grouped by ability.
func Focuses() []Focus {
	out := make([]Focus, len(focusOrder))
	copy(out, focusOrder)
	return out
}

// Valid reports whether f names a known focus.
func (f Focus) Valid() bool {
	_, ok := focusTable[f]
	return ok
}

// Ability returns the ability f is keyed to, or "" for an unknown focus.
func (f Focus) Ability() Ability {
	return focusTable[f].ability
}

// BaseName returns the focus name without its ability, e.g. "Stamina".
func (f Focus) BaseName() string {
	return focusTable[f].name
}

// String renders the focus the way character sheets print it, e.g.
// "Constitution (Stamina)".
func (f Focus) String() string {
	info, ok := focusTable[f]
	if !ok {
		return string(f)
	}
	return fmt.Sprintf("%s (%s)", info.ability, info.name)
}

// FocusLevel is the degree of investment in a focus.
type FocusLevel int

const (
	NoFocus FocusLevel = iota
	SingleFocus
	DoubleFocus
)

// Bonus returns the test bonus granted by the level.
func (l FocusLevel) Bonus() int {
	return int(l) * 2
}

func (l FocusLevel) String() string {
	switch l {
	case SingleFocus:
		return "single"
	case DoubleFocus:
		return "double"
	default:
		return "none"
	}
}
