/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: classify_test.go
Description: Tests the first-match-wins classification priority order,
including the fallback path and spare detection.
*/

package classify_test

import (
	"testing"

	"github.com/mesa-automation/io-crosscheck/pkg/classify"
	"github.com/mesa-automation/io-crosscheck/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func cfg() domain.Config { return domain.DefaultConfig() }

func TestClassifyTag_Alias(t *testing.T) {
	tag := &domain.PLCTag{RecordKind: domain.RecordALIAS, Name: "SomeAlias"}
	note := classify.ClassifyTag(tag, cfg())
	assert.Equal(t, domain.CategoryAlias, tag.Category)
	assert.Empty(t, note)
}

func TestClassifyTag_BitComment(t *testing.T) {
	tag := &domain.PLCTag{
		RecordKind: domain.RecordCOMMENT,
		Specifier:  "Rack11:I.DATA[3].13",
	}
	classify.ClassifyTag(tag, cfg())
	assert.Equal(t, domain.CategoryBitComment, tag.Category)
}

func TestClassifyTag_CommentWithoutCLXSpecifierFallsThrough(t *testing.T) {
	tag := &domain.PLCTag{RecordKind: domain.RecordCOMMENT, Specifier: ""}
	note := classify.ClassifyTag(tag, cfg())
	assert.Equal(t, domain.CategoryProgram, tag.Category)
	assert.Equal(t, classify.UnknownDatatypeNote, note)
}

func TestClassifyTag_RackIO(t *testing.T) {
	tag := &domain.PLCTag{RecordKind: domain.RecordTAG, Name: "Rack11:I"}
	classify.ClassifyTag(tag, cfg())
	assert.Equal(t, domain.CategoryRackIO, tag.Category)
}

func TestClassifyTag_IOModule(t *testing.T) {
	for _, dt := range []string{"AB:1756_IF16:I:0", "EH:1734_IB8:I:0"} {
		tag := &domain.PLCTag{RecordKind: domain.RecordTAG, Name: "SomeModule", Datatype: dt}
		classify.ClassifyTag(tag, cfg())
		assert.Equal(t, domain.CategoryIOModule, tag.Category, dt)
	}
}

func TestClassifyTag_ENetDevice(t *testing.T) {
	tag := &domain.PLCTag{RecordKind: domain.RecordTAG, Name: "E300_P621:I", BaseName: "E300_P621"}
	classify.ClassifyTag(tag, cfg())
	assert.Equal(t, domain.CategoryENetDevice, tag.Category)
}

func TestClassifyTag_ProgramPrimitive(t *testing.T) {
	tag := &domain.PLCTag{RecordKind: domain.RecordTAG, Name: "SomeTimer", Datatype: "TIMER"}
	note := classify.ClassifyTag(tag, cfg())
	assert.Equal(t, domain.CategoryProgram, tag.Category)
	assert.Empty(t, note)
}

func TestClassifyTag_ProgramUDT(t *testing.T) {
	tag := &domain.PLCTag{RecordKind: domain.RecordTAG, Name: "SomeUDT", Datatype: "MotorControlUDT"}
	note := classify.ClassifyTag(tag, cfg())
	assert.Equal(t, domain.CategoryProgram, tag.Category)
	assert.Empty(t, note)
}

func TestClassifyTag_FallbackUnknownDatatype(t *testing.T) {
	tag := &domain.PLCTag{RecordKind: domain.RecordTAG, Name: "Weird", Datatype: ""}
	note := classify.ClassifyTag(tag, cfg())
	assert.Equal(t, domain.CategoryProgram, tag.Category)
	assert.Equal(t, classify.UnknownDatatypeNote, note)
}

func TestClassifyTag_PriorityOrder_AliasBeatsEverything(t *testing.T) {
	// Even a Rack-IO-shaped name is Alias if the record kind says ALIAS.
	tag := &domain.PLCTag{RecordKind: domain.RecordALIAS, Name: "Rack11:I"}
	classify.ClassifyTag(tag, cfg())
	assert.Equal(t, domain.CategoryAlias, tag.Category)
}

func TestIsSpare(t *testing.T) {
	assert.True(t, classify.IsSpare(domain.IODevice{IOTag: "Spare"}))
	assert.True(t, classify.IsSpare(domain.IODevice{DeviceTag: "  SPARE  "}))
	assert.True(t, classify.IsSpare(domain.IODevice{Channel: "3"}))
	assert.False(t, classify.IsSpare(domain.IODevice{IOTag: "TT101", DeviceTag: "TT101"}))
	assert.False(t, classify.IsSpare(domain.IODevice{}))
}
