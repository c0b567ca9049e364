// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/mausam-code/complete-agency/db/ent/schema"
	"github.com/mausam-code/complete-agency/gen/ent/documentscan"
	"github.com/mausam-code/complete-agency/gen/ent/extracteddata"
	"github.com/mausam-code/complete-agency/gen/ent/generatedcv"
	"github.com/mausam-code/complete-agency/gen/ent/processingjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentscanFields := schema.DocumentScan{}.Fields()
	_ = documentscanFields
	// documentscanDescDocumentType is the schema descriptor for document_type field.
	documentscanDescDocumentType := documentscanFields[2].Descriptor()
	// documentscan.DefaultDocumentType holds the default value on creation for the document_type field.
	documentscan.DefaultDocumentType = documentscanDescDocumentType.Default.(string)
	// documentscan.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	documentscan.DocumentTypeValidator = documentscanDescDocumentType.Validators[0].(func(string) error)
	// documentscanDescFilePath is the schema descriptor for file_path field.
	documentscanDescFilePath := documentscanFields[3].Descriptor()
	// documentscan.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	documentscan.FilePathValidator = documentscanDescFilePath.Validators[0].(func(string) error)
	// documentscanDescFileName is the schema descriptor for file_name field.
	documentscanDescFileName := documentscanFields[4].Descriptor()
	// documentscan.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	documentscan.FileNameValidator = documentscanDescFileName.Validators[0].(func(string) error)
	// documentscanDescFileExt is the schema descriptor for file_ext field.
	documentscanDescFileExt := documentscanFields[5].Descriptor()
	// documentscan.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	documentscan.FileExtValidator = documentscanDescFileExt.Validators[0].(func(string) error)
	// documentscanDescConfidenceScore is the schema descriptor for confidence_score field.
	documentscanDescConfidenceScore := documentscanFields[7].Descriptor()
	// documentscan.DefaultConfidenceScore holds the default value on creation for the confidence_score field.
	documentscan.DefaultConfidenceScore = documentscanDescConfidenceScore.Default.(float64)
	// documentscanDescStatus is the schema descriptor for status field.
	documentscanDescStatus := documentscanFields[8].Descriptor()
	// documentscan.DefaultStatus holds the default value on creation for the status field.
	documentscan.DefaultStatus = documentscanDescStatus.Default.(string)
	// documentscan.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	documentscan.StatusValidator = documentscanDescStatus.Validators[0].(func(string) error)
	// documentscanDescFileSize is the schema descriptor for file_size field.
	documentscanDescFileSize := documentscanFields[10].Descriptor()
	// documentscan.DefaultFileSize holds the default value on creation for the file_size field.
	documentscan.DefaultFileSize = documentscanDescFileSize.Default.(int)
	// documentscan.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	documentscan.FileSizeValidator = documentscanDescFileSize.Validators[0].(func(int) error)
	// documentscanDescPageCount is the schema descriptor for page_count field.
	documentscanDescPageCount := documentscanFields[11].Descriptor()
	// documentscan.DefaultPageCount holds the default value on creation for the page_count field.
	documentscan.DefaultPageCount = documentscanDescPageCount.Default.(int)
	// documentscanDescProcessingTime is the schema descriptor for processing_time field.
	documentscanDescProcessingTime := documentscanFields[12].Descriptor()
	// documentscan.DefaultProcessingTime holds the default value on creation for the processing_time field.
	documentscan.DefaultProcessingTime = documentscanDescProcessingTime.Default.(float64)
	// documentscanDescCreatedAt is the schema descriptor for created_at field.
	documentscanDescCreatedAt := documentscanFields[13].Descriptor()
	// documentscan.DefaultCreatedAt holds the default value on creation for the created_at field.
	documentscan.DefaultCreatedAt = documentscanDescCreatedAt.Default.(func() time.Time)
	// documentscanDescUpdatedAt is the schema descriptor for updated_at field.
	documentscanDescUpdatedAt := documentscanFields[14].Descriptor()
	// documentscan.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	documentscan.DefaultUpdatedAt = documentscanDescUpdatedAt.Default.(func() time.Time)
	// documentscan.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	documentscan.UpdateDefaultUpdatedAt = documentscanDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentscanDescID is the schema descriptor for id field.
	documentscanDescID := documentscanFields[0].Descriptor()
	// documentscan.DefaultID holds the default value on creation for the id field.
	documentscan.DefaultID = documentscanDescID.Default.(func() uuid.UUID)
	extracteddataFields := schema.ExtractedData{}.Fields()
	_ = extracteddataFields
	// extracteddataDescExperienceYears is the schema descriptor for experience_years field.
	extracteddataDescExperienceYears := extracteddataFields[9].Descriptor()
	// extracteddata.ExperienceYearsValidator is a validator for the "experience_years" field. It is called by the builders before save.
	extracteddata.ExperienceYearsValidator = extracteddataDescExperienceYears.Validators[0].(func(int) error)
	// extracteddataDescCreatedAt is the schema descriptor for created_at field.
	extracteddataDescCreatedAt := extracteddataFields[14].Descriptor()
	// extracteddata.DefaultCreatedAt holds the default value on creation for the created_at field.
	extracteddata.DefaultCreatedAt = extracteddataDescCreatedAt.Default.(func() time.Time)
	// extracteddataDescUpdatedAt is the schema descriptor for updated_at field.
	extracteddataDescUpdatedAt := extracteddataFields[15].Descriptor()
	// extracteddata.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extracteddata.DefaultUpdatedAt = extracteddataDescUpdatedAt.Default.(func() time.Time)
	// extracteddata.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extracteddata.UpdateDefaultUpdatedAt = extracteddataDescUpdatedAt.UpdateDefault.(func() time.Time)
	// extracteddataDescID is the schema descriptor for id field.
	extracteddataDescID := extracteddataFields[0].Descriptor()
	// extracteddata.DefaultID holds the default value on creation for the id field.
	extracteddata.DefaultID = extracteddataDescID.Default.(func() uuid.UUID)
	generatedcvFields := schema.GeneratedCV{}.Fields()
	_ = generatedcvFields
	// generatedcvDescTemplateType is the schema descriptor for template_type field.
	generatedcvDescTemplateType := generatedcvFields[3].Descriptor()
	// generatedcv.DefaultTemplateType holds the default value on creation for the template_type field.
	generatedcv.DefaultTemplateType = generatedcvDescTemplateType.Default.(string)
	// generatedcv.TemplateTypeValidator is a validator for the "template_type" field. It is called by the builders before save.
	generatedcv.TemplateTypeValidator = generatedcvDescTemplateType.Validators[0].(func(string) error)
	// generatedcvDescStatus is the schema descriptor for status field.
	generatedcvDescStatus := generatedcvFields[7].Descriptor()
	// generatedcv.DefaultStatus holds the default value on creation for the status field.
	generatedcv.DefaultStatus = generatedcvDescStatus.Default.(string)
	// generatedcv.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	generatedcv.StatusValidator = generatedcvDescStatus.Validators[0].(func(string) error)
	// generatedcvDescCreatedAt is the schema descriptor for created_at field.
	generatedcvDescCreatedAt := generatedcvFields[10].Descriptor()
	// generatedcv.DefaultCreatedAt holds the default value on creation for the created_at field.
	generatedcv.DefaultCreatedAt = generatedcvDescCreatedAt.Default.(func() time.Time)
	// generatedcvDescUpdatedAt is the schema descriptor for updated_at field.
	generatedcvDescUpdatedAt := generatedcvFields[11].Descriptor()
	// generatedcv.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	generatedcv.DefaultUpdatedAt = generatedcvDescUpdatedAt.Default.(func() time.Time)
	// generatedcv.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	generatedcv.UpdateDefaultUpdatedAt = generatedcvDescUpdatedAt.UpdateDefault.(func() time.Time)
	// generatedcvDescID is the schema descriptor for id field.
	generatedcvDescID := generatedcvFields[0].Descriptor()
	// generatedcv.DefaultID holds the default value on creation for the id field.
	generatedcv.DefaultID = generatedcvDescID.Default.(func() uuid.UUID)
	processingjobFields := schema.ProcessingJob{}.Fields()
	_ = processingjobFields
	// processingjobDescJobType is the schema descriptor for job_type field.
	processingjobDescJobType := processingjobFields[2].Descriptor()
	// processingjob.JobTypeValidator is a validator for the "job_type" field. It is called by the builders before save.
	processingjob.JobTypeValidator = func() func(string) error {
		validators := processingjobDescJobType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(job_type string) error {
			for _, fn := range fns {
				if err := fn(job_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processingjobDescStatus is the schema descriptor for status field.
	processingjobDescStatus := processingjobFields[3].Descriptor()
	// processingjob.DefaultStatus holds the default value on creation for the status field.
	processingjob.DefaultStatus = processingjobDescStatus.Default.(string)
	// processingjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	processingjob.StatusValidator = processingjobDescStatus.Validators[0].(func(string) error)
	// processingjobDescProgress is the schema descriptor for progress field.
	processingjobDescProgress := processingjobFields[6].Descriptor()
	// processingjob.DefaultProgress holds the default value on creation for the progress field.
	processingjob.DefaultProgress = processingjobDescProgress.Default.(int)
	// processingjob.ProgressValidator is a validator for the "progress" field. It is called by the builders before save.
	processingjob.ProgressValidator = func() func(int) error {
		validators := processingjobDescProgress.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(progress int) error {
			for _, fn := range fns {
				if err := fn(progress); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processingjobDescCreatedAt is the schema descriptor for created_at field.
	processingjobDescCreatedAt := processingjobFields[11].Descriptor()
	// processingjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	processingjob.DefaultCreatedAt = processingjobDescCreatedAt.Default.(func() time.Time)
	// processingjobDescID is the schema descriptor for id field.
	processingjobDescID := processingjobFields[0].Descriptor()
	// processingjob.DefaultID holds the default value on creation for the id field.
	processingjob.DefaultID = processingjobDescID.Default.(func() uuid.UUID)
}
