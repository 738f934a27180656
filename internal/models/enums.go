package models

// Testament partitions content into pre- and post-incarnation periods.
type Testament string

const (
	TestamentOld  Testament = "OLD"
	TestamentNew  Testament = "NEW"
	TestamentBoth Testament = "BOTH"
)

// Gender of a person, when recorded.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// EventCategory classifies an event into a biblical era or kind.
type EventCategory string

const (
	EventCreation     EventCategory = "CREATION"
	EventPatriarchs   EventCategory = "PATRIARCHS"
	EventExodus       EventCategory = "EXODUS"
	EventConquest     EventCategory = "CONQUEST"
	EventJudges       EventCategory = "JUDGES"
	EventMonarchy     EventCategory = "MONARCHY"
	EventExile        EventCategory = "EXILE"
	EventReturn       EventCategory = "RETURN"
	EventMinistry     EventCategory = "MINISTRY"
	EventMiracle      EventCategory = "MIRACLE"
	EventTeaching     EventCategory = "TEACHING"
	EventCrucifixion  EventCategory = "CRUCIFIXION"
	EventResurrection EventCategory = "RESURRECTION"
	EventChurch       EventCategory = "CHURCH"
	EventProphecy     EventCategory = "PROPHECY"
)

// ThemeCategory classifies a theological theme.
type ThemeCategory string

const (
	ThemeFaith      ThemeCategory = "FAITH"
	ThemeLove       ThemeCategory = "LOVE"
	ThemeSalvation  ThemeCategory = "SALVATION"
	ThemePrayer     ThemeCategory = "PRAYER"
	ThemeWisdom     ThemeCategory = "WISDOM"
	ThemeProphecy   ThemeCategory = "PROPHECY"
	ThemeLaw        ThemeCategory = "LAW"
	ThemeCovenant   ThemeCategory = "COVENANT"
	ThemeKingdom    ThemeCategory = "KINGDOM"
	ThemeWorship    ThemeCategory = "WORSHIP"
	ThemeSin        ThemeCategory = "SIN"
	ThemeRedemption ThemeCategory = "REDEMPTION"
	ThemeHoliness   ThemeCategory = "HOLINESS"
	ThemeJustice    ThemeCategory = "JUSTICE"
	ThemeMercy      ThemeCategory = "MERCY"
)

// RelationType labels a directed person-to-person relationship.
type RelationType string

const (
	RelationParent     RelationType = "PARENT"
	RelationChild      RelationType = "CHILD"
	RelationSpouse     RelationType = "SPOUSE"
	RelationSibling    RelationType = "SIBLING"
	RelationAncestor   RelationType = "ANCESTOR"
	RelationDescendant RelationType = "DESCENDANT"
	RelationMentor     RelationType = "MENTOR"
	RelationDisciple   RelationType = "DISCIPLE"
	RelationFriend     RelationType = "FRIEND"
	RelationEnemy      RelationType = "ENEMY"
	RelationAlly       RelationType = "ALLY"
)
