// Code generated by ent, DO NOT EDIT.

package generatedcv

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/mausam-code/complete-agency/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldUserID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldDocumentID, v))
}

// TemplateType applies equality check predicate on the "template_type" field. It's identical to TemplateTypeEQ.
func TemplateType(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldTemplateType, v))
}

// CvFile applies equality check predicate on the "cv_file" field. It's identical to CvFileEQ.
func CvFile(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldCvFile, v))
}

// ApplicationForm applies equality check predicate on the "application_form" field. It's identical to ApplicationFormEQ.
func ApplicationForm(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldApplicationForm, v))
}

// MergedDocument applies equality check predicate on the "merged_document" field. It's identical to MergedDocumentEQ.
func MergedDocument(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldMergedDocument, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldLTE(FieldUserID, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNotIn(FieldDocumentID, vs...))
}

// TemplateTypeEQ applies the EQ predicate on the "template_type" field.
func TemplateTypeEQ(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldTemplateType, v))
}

// TemplateTypeNEQ applies the NEQ predicate on the "template_type" field.
func TemplateTypeNEQ(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNEQ(FieldTemplateType, v))
}

// TemplateTypeIn applies the In predicate on the "template_type" field.
func TemplateTypeIn(vs ...string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldIn(FieldTemplateType, vs...))
}

// TemplateTypeNotIn applies the NotIn predicate on the "template_type" field.
func TemplateTypeNotIn(vs ...string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNotIn(FieldTemplateType, vs...))
}

// TemplateTypeGT applies the GT predicate on the "template_type" field.
func TemplateTypeGT(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldGT(FieldTemplateType, v))
}

// TemplateTypeGTE applies the GTE predicate on the "template_type" field.
func TemplateTypeGTE(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldGTE(FieldTemplateType, v))
}

// TemplateTypeLT applies the LT predicate on the "template_type" field.
func TemplateTypeLT(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldLT(FieldTemplateType, v))
}

// TemplateTypeLTE applies the LTE predicate on the "template_type" field.
func TemplateTypeLTE(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldLTE(FieldTemplateType, v))
}

// TemplateTypeContains applies the Contains predicate on the "template_type" field.
func TemplateTypeContains(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldContains(FieldTemplateType, v))
}

// TemplateTypeHasPrefix applies the HasPrefix predicate on the "template_type" field.
func TemplateTypeHasPrefix(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldHasPrefix(FieldTemplateType, v))
}

// TemplateTypeHasSuffix applies the HasSuffix predicate on the "template_type" field.
func TemplateTypeHasSuffix(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldHasSuffix(FieldTemplateType, v))
}

// TemplateTypeEqualFold applies the EqualFold predicate on the "template_type" field.
func TemplateTypeEqualFold(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEqualFold(FieldTemplateType, v))
}

// TemplateTypeContainsFold applies the ContainsFold predicate on the "template_type" field.
func TemplateTypeContainsFold(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldContainsFold(FieldTemplateType, v))
}

// CvFileEQ applies the EQ predicate on the "cv_file" field.
func CvFileEQ(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldCvFile, v))
}

// CvFileNEQ applies the NEQ predicate on the "cv_file" field.
func CvFileNEQ(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNEQ(FieldCvFile, v))
}

// CvFileIn applies the In predicate on the "cv_file" field.
func CvFileIn(vs ...string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldIn(FieldCvFile, vs...))
}

// CvFileNotIn applies the NotIn predicate on the "cv_file" field.
func CvFileNotIn(vs ...string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNotIn(FieldCvFile, vs...))
}

// CvFileGT applies the GT predicate on the "cv_file" field.
func CvFileGT(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldGT(FieldCvFile, v))
}

// CvFileGTE applies the GTE predicate on the "cv_file" field.
func CvFileGTE(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldGTE(FieldCvFile, v))
}

// CvFileLT applies the LT predicate on the "cv_file" field.
func CvFileLT(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldLT(FieldCvFile, v))
}

// CvFileLTE applies the LTE predicate on the "cv_file" field.
func CvFileLTE(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldLTE(FieldCvFile, v))
}

// CvFileContains applies the Contains predicate on the "cv_file" field.
func CvFileContains(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldContains(FieldCvFile, v))
}

// CvFileHasPrefix applies the HasPrefix predicate on the "cv_file" field.
func CvFileHasPrefix(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldHasPrefix(FieldCvFile, v))
}

// CvFileHasSuffix applies the HasSuffix predicate on the "cv_file" field.
func CvFileHasSuffix(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldHasSuffix(FieldCvFile, v))
}

// CvFileIsNil applies the IsNil predicate on the "cv_file" field.
func CvFileIsNil() predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldIsNull(FieldCvFile))
}

// CvFileNotNil applies the NotNil predicate on the "cv_file" field.
func CvFileNotNil() predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNotNull(FieldCvFile))
}

// CvFileEqualFold applies the EqualFold predicate on the "cv_file" field.
func CvFileEqualFold(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEqualFold(FieldCvFile, v))
}

// CvFileContainsFold applies the ContainsFold predicate on the "cv_file" field.
func CvFileContainsFold(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldContainsFold(FieldCvFile, v))
}

// ApplicationFormEQ applies the EQ predicate on the "application_form" field.
func ApplicationFormEQ(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldApplicationForm, v))
}

// ApplicationFormNEQ applies the NEQ predicate on the "application_form" field.
func ApplicationFormNEQ(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNEQ(FieldApplicationForm, v))
}

// ApplicationFormIn applies the In predicate on the "application_form" field.
func ApplicationFormIn(vs ...string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldIn(FieldApplicationForm, vs...))
}

// ApplicationFormNotIn applies the NotIn predicate on the "application_form" field.
func ApplicationFormNotIn(vs ...string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNotIn(FieldApplicationForm, vs...))
}

// ApplicationFormGT applies the GT predicate on the "application_form" field.
func ApplicationFormGT(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldGT(FieldApplicationForm, v))
}

// ApplicationFormGTE applies the GTE predicate on the "application_form" field.
func ApplicationFormGTE(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldGTE(FieldApplicationForm, v))
}

// ApplicationFormLT applies the LT predicate on the "application_form" field.
func ApplicationFormLT(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldLT(FieldApplicationForm, v))
}

// ApplicationFormLTE applies the LTE predicate on the "application_form" field.
func ApplicationFormLTE(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldLTE(FieldApplicationForm, v))
}

// ApplicationFormContains applies the Contains predicate on the "application_form" field.
func ApplicationFormContains(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldContains(FieldApplicationForm, v))
}

// ApplicationFormHasPrefix applies the HasPrefix predicate on the "application_form" field.
func ApplicationFormHasPrefix(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldHasPrefix(FieldApplicationForm, v))
}

// ApplicationFormHasSuffix applies the HasSuffix predicate on the "application_form" field.
func ApplicationFormHasSuffix(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldHasSuffix(FieldApplicationForm, v))
}

// ApplicationFormIsNil applies the IsNil predicate on the "application_form" field.
func ApplicationFormIsNil() predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldIsNull(FieldApplicationForm))
}

// ApplicationFormNotNil applies the NotNil predicate on the "application_form" field.
func ApplicationFormNotNil() predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNotNull(FieldApplicationForm))
}

// ApplicationFormEqualFold applies the EqualFold predicate on the "application_form" field.
func ApplicationFormEqualFold(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEqualFold(FieldApplicationForm, v))
}

// ApplicationFormContainsFold applies the ContainsFold predicate on the "application_form" field.
func ApplicationFormContainsFold(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldContainsFold(FieldApplicationForm, v))
}

// MergedDocumentEQ applies the EQ predicate on the "merged_document" field.
func MergedDocumentEQ(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldMergedDocument, v))
}

// MergedDocumentNEQ applies the NEQ predicate on the "merged_document" field.
func MergedDocumentNEQ(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNEQ(FieldMergedDocument, v))
}

// MergedDocumentIn applies the In predicate on the "merged_document" field.
func MergedDocumentIn(vs ...string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldIn(FieldMergedDocument, vs...))
}

// MergedDocumentNotIn applies the NotIn predicate on the "merged_document" field.
func MergedDocumentNotIn(vs ...string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNotIn(FieldMergedDocument, vs...))
}

// MergedDocumentGT applies the GT predicate on the "merged_document" field.
func MergedDocumentGT(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldGT(FieldMergedDocument, v))
}

// MergedDocumentGTE applies the GTE predicate on the "merged_document" field.
func MergedDocumentGTE(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldGTE(FieldMergedDocument, v))
}

// MergedDocumentLT applies the LT predicate on the "merged_document" field.
func MergedDocumentLT(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldLT(FieldMergedDocument, v))
}

// MergedDocumentLTE applies the LTE predicate on the "merged_document" field.
func MergedDocumentLTE(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldLTE(FieldMergedDocument, v))
}

// MergedDocumentContains applies the Contains predicate on the "merged_document" field.
func MergedDocumentContains(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldContains(FieldMergedDocument, v))
}

// MergedDocumentHasPrefix applies the HasPrefix predicate on the "merged_document" field.
func MergedDocumentHasPrefix(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldHasPrefix(FieldMergedDocument, v))
}

// MergedDocumentHasSuffix applies the HasSuffix predicate on the "merged_document" field.
func MergedDocumentHasSuffix(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldHasSuffix(FieldMergedDocument, v))
}

// MergedDocumentIsNil applies the IsNil predicate on the "merged_document" field.
func MergedDocumentIsNil() predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldIsNull(FieldMergedDocument))
}

// MergedDocumentNotNil applies the NotNil predicate on the "merged_document" field.
func MergedDocumentNotNil() predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNotNull(FieldMergedDocument))
}

// MergedDocumentEqualFold applies the EqualFold predicate on the "merged_document" field.
func MergedDocumentEqualFold(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEqualFold(FieldMergedDocument, v))
}

// MergedDocumentContainsFold applies the ContainsFold predicate on the "merged_document" field.
func MergedDocumentContainsFold(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldContainsFold(FieldMergedDocument, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CustomDataIsNil applies the IsNil predicate on the "custom_data" field.
func CustomDataIsNil() predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldIsNull(FieldCustomData))
}

// CustomDataNotNil applies the NotNil predicate on the "custom_data" field.
func CustomDataNotNil() predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNotNull(FieldCustomData))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSourceDocument applies the HasEdge predicate on the "source_document" edge.
func HasSourceDocument() predicate.GeneratedCV {
	return predicate.GeneratedCV(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SourceDocumentTable, SourceDocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourceDocumentWith applies the HasEdge predicate on the "source_document" edge with a given conditions (other predicates).
func HasSourceDocumentWith(preds ...predicate.DocumentScan) predicate.GeneratedCV {
	return predicate.GeneratedCV(func(s *sql.Selector) {
		step := newSourceDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.GeneratedCV {
	return predicate.GeneratedCV(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ProcessingJob) predicate.GeneratedCV {
	return predicate.GeneratedCV(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GeneratedCV) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GeneratedCV) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GeneratedCV) predicate.GeneratedCV {
	return predicate.GeneratedCV(sql.NotPredicates(p))
}
