// internal/record/record.go
package record

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/juju/errors"
)

type Kind string

const (
	OmniScript           Kind = "omniscript"
	DataRaptor           Kind = "dataraptor"
	IntegrationProcedure Kind = "integration-procedure"
)

type Operation string

const (
	Export Operation = "export"
	Import Operation = "import"
)

// Operations lists every operation in command order.
var Operations = []Operation{Export, Import}

// Past returns the operation in the past tense, as used in messages.
func (o Operation) Past() string {
	return string(o) + "ed"
}

// Title returns the capitalized operation name.
func (o Operation) Title() string {
	s := string(o)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Descriptor carries everything that differs between record kinds.
type Descriptor struct {
	Kind   Kind
	Label  string
	Plural string
	// Query selects every record of the kind.
	Query string
	// FilterJoin is the SOQL keyword used to append the id filter to Query.
	FilterJoin string
}

const omniProcessQuery = "SELECT IsMetadataCacheDisabled, IsTestProcedure, Description, OverrideKey, Name, OmniProcessKey, Language, PropertySetConfig, LastPreviewPage, OmniProcessType, ElementTypeComponentMapping, SubType, ResponseCacheType, IsOmniScriptEmbeddable, CustomJavaScript, IsIntegrationProcedure, VersionNumber, DesignerCustomizationType, Namespace, Type, RequiredPermission, WebComponentKey, IsWebCompEnabled,(SELECT Description, DesignerCustomizationType, Name, EmbeddedOmniScriptKey, IsActive, Type, ParentElementId, PropertySetConfig, SequenceNumber, Level, Id from OmniProcessElements) from OmniProcess"

const dataTransformQuery = "SELECT Id, SourceObject,ExpectedInputOtherData,ExpectedOutputJson,Description,ExpectedOutputXml,IsDeletedOnSuccess,IsProcessSuperBulk,OverrideKey,PreviewOtherData,SynchronousProcessThreshold,TargetOutputDocumentIdentifier,GlobalKey,Name,IsAssignmentRulesUsed,IsXmlDeclarationRemoved,XmlOutputTagsOrder,IsSourceObjectDefault,InputParsingClass,ExpectedOutputOtherData,PreviewSourceObjectData,OutputType,PreviewJsonData,IsRollbackOnError,BatchSize,ResponseCacheType,IsNullInputsIncludedInOutput,VersionNumber,OutputParsingClass,Type,IsErrorIgnored,ExpectedInputJson,ExpectedInputXml,RequiredPermission,PreviewXmlData,InputType,ResponseCacheTtlMinutes,TargetOutputFileName,IsFieldLevelSecurityEnabled,PreprocessorClassName, (SELECT Id,MigrationPattern,InputObjectQuerySequence,FormulaResultPath,FormulaSequence,LinkedFieldName,IsDisabled,MigrationCategory,MigrationType,OutputFieldName,MigrationValue,FilterGroup,LinkedObjectSequence,GlobalKey,Name,OutputCreationSequence,DefaultValue,LookupReturnedFieldName,IsRequiredForUpsert,MigrationProcess,FilterDataType,InputObjectName,FormulaExpression,LookupObjectName,MigrationAttribute,MigrationGroup,FilterValue,FilterOperator,InputFieldName,MigrationKey,IsUpsertKey,LookupByFieldName,OutputFieldFormat,TransformValueMappings,OutputObjectName FROM OmniDataTransformItems) FROM OmniDataTransform"

var descriptors = []Descriptor{
	{
		Kind:       OmniScript,
		Label:      "OmniScript",
		Plural:     "OmniScripts",
		Query:      omniProcessQuery + " where OmniProcessType='Omniscript'",
		FilterJoin: "AND",
	},
	{
		Kind:       DataRaptor,
		Label:      "DataRaptor",
		Plural:     "DataRaptors",
		Query:      dataTransformQuery,
		FilterJoin: "WHERE",
	},
	{
		Kind:       IntegrationProcedure,
		Label:      "Integration Procedure",
		Plural:     "Integration Procedures",
		Query:      omniProcessQuery + " where OmniProcessType='Integration Procedure'",
		FilterJoin: "AND",
	},
}

// All returns the descriptors of every supported record kind.
func All() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

func Lookup(kind Kind) (Descriptor, error) {
	for _, d := range descriptors {
		if d.Kind == kind {
			return d, nil
		}
	}
	return Descriptor{}, errors.NotFoundf("record kind %q", kind)
}

// CommandName is the CLI command that runs op for this kind, e.g.
// "export-omniscript".
func (d Descriptor) CommandName(op Operation) string {
	return fmt.Sprintf("%s-%s", op, d.Kind)
}

var idPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ValidateID accepts an empty id (meaning every record) or a plain
// alphanumeric record id. Anything else could break out of the SOQL literal.
func ValidateID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	if !idPattern.MatchString(id) {
		return errors.NotValidf("record id %q (only letters and digits are allowed)", id)
	}
	return nil
}

// ExportQuery returns the SOQL query for an export. An empty id selects every
// record of the kind.
func (d Descriptor) ExportQuery(id string) (string, error) {
	id = strings.TrimSpace(id)
	if err := ValidateID(id); err != nil {
		return "", err
	}
	if id == "" {
		return d.Query, nil
	}
	return fmt.Sprintf("%s %s id='%s'", d.Query, d.FilterJoin, id), nil
}
