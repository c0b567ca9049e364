// Code generated by ent, DO NOT EDIT.

package extracteddata

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/mausam-code/complete-agency/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldDocumentID, v))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldFullName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldEmail, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldPhone, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldAddress, v))
}

// DateOfBirth applies equality check predicate on the "date_of_birth" field. It's identical to DateOfBirthEQ.
func DateOfBirth(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldDateOfBirth, v))
}

// CurrentPosition applies equality check predicate on the "current_position" field. It's identical to CurrentPositionEQ.
func CurrentPosition(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldCurrentPosition, v))
}

// Company applies equality check predicate on the "company" field. It's identical to CompanyEQ.
func Company(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldCompany, v))
}

// ExperienceYears applies equality check predicate on the "experience_years" field. It's identical to ExperienceYearsEQ.
func ExperienceYears(v int) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldExperienceYears, v))
}

// Skills applies equality check predicate on the "skills" field. It's identical to SkillsEQ.
func Skills(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldSkills, v))
}

// Education applies equality check predicate on the "education" field. It's identical to EducationEQ.
func Education(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldEducation, v))
}

// Certifications applies equality check predicate on the "certifications" field. It's identical to CertificationsEQ.
func Certifications(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldCertifications, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldUpdatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldDocumentID, vs...))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameIsNil applies the IsNil predicate on the "full_name" field.
func FullNameIsNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIsNull(FieldFullName))
}

// FullNameNotNil applies the NotNil predicate on the "full_name" field.
func FullNameNotNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotNull(FieldFullName))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContainsFold(FieldFullName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContainsFold(FieldPhone, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContainsFold(FieldAddress, v))
}

// DateOfBirthEQ applies the EQ predicate on the "date_of_birth" field.
func DateOfBirthEQ(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldDateOfBirth, v))
}

// DateOfBirthNEQ applies the NEQ predicate on the "date_of_birth" field.
func DateOfBirthNEQ(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldDateOfBirth, v))
}

// DateOfBirthIn applies the In predicate on the "date_of_birth" field.
func DateOfBirthIn(vs ...time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldDateOfBirth, vs...))
}

// DateOfBirthNotIn applies the NotIn predicate on the "date_of_birth" field.
func DateOfBirthNotIn(vs ...time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldDateOfBirth, vs...))
}

// DateOfBirthGT applies the GT predicate on the "date_of_birth" field.
func DateOfBirthGT(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldDateOfBirth, v))
}

// DateOfBirthGTE applies the GTE predicate on the "date_of_birth" field.
func DateOfBirthGTE(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldDateOfBirth, v))
}

// DateOfBirthLT applies the LT predicate on the "date_of_birth" field.
func DateOfBirthLT(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldDateOfBirth, v))
}

// DateOfBirthLTE applies the LTE predicate on the "date_of_birth" field.
func DateOfBirthLTE(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldDateOfBirth, v))
}

// DateOfBirthIsNil applies the IsNil predicate on the "date_of_birth" field.
func DateOfBirthIsNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIsNull(FieldDateOfBirth))
}

// DateOfBirthNotNil applies the NotNil predicate on the "date_of_birth" field.
func DateOfBirthNotNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotNull(FieldDateOfBirth))
}

// CurrentPositionEQ applies the EQ predicate on the "current_position" field.
func CurrentPositionEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldCurrentPosition, v))
}

// CurrentPositionNEQ applies the NEQ predicate on the "current_position" field.
func CurrentPositionNEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldCurrentPosition, v))
}

// CurrentPositionIn applies the In predicate on the "current_position" field.
func CurrentPositionIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldCurrentPosition, vs...))
}

// CurrentPositionNotIn applies the NotIn predicate on the "current_position" field.
func CurrentPositionNotIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldCurrentPosition, vs...))
}

// CurrentPositionGT applies the GT predicate on the "current_position" field.
func CurrentPositionGT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldCurrentPosition, v))
}

// CurrentPositionGTE applies the GTE predicate on the "current_position" field.
func CurrentPositionGTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldCurrentPosition, v))
}

// CurrentPositionLT applies the LT predicate on the "current_position" field.
func CurrentPositionLT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldCurrentPosition, v))
}

// CurrentPositionLTE applies the LTE predicate on the "current_position" field.
func CurrentPositionLTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldCurrentPosition, v))
}

// CurrentPositionContains applies the Contains predicate on the "current_position" field.
func CurrentPositionContains(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContains(FieldCurrentPosition, v))
}

// CurrentPositionHasPrefix applies the HasPrefix predicate on the "current_position" field.
func CurrentPositionHasPrefix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasPrefix(FieldCurrentPosition, v))
}

// CurrentPositionHasSuffix applies the HasSuffix predicate on the "current_position" field.
func CurrentPositionHasSuffix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasSuffix(FieldCurrentPosition, v))
}

// CurrentPositionIsNil applies the IsNil predicate on the "current_position" field.
func CurrentPositionIsNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIsNull(FieldCurrentPosition))
}

// CurrentPositionNotNil applies the NotNil predicate on the "current_position" field.
func CurrentPositionNotNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotNull(FieldCurrentPosition))
}

// CurrentPositionEqualFold applies the EqualFold predicate on the "current_position" field.
func CurrentPositionEqualFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEqualFold(FieldCurrentPosition, v))
}

// CurrentPositionContainsFold applies the ContainsFold predicate on the "current_position" field.
func CurrentPositionContainsFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContainsFold(FieldCurrentPosition, v))
}

// CompanyEQ applies the EQ predicate on the "company" field.
func CompanyEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldCompany, v))
}

// CompanyNEQ applies the NEQ predicate on the "company" field.
func CompanyNEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldCompany, v))
}

// CompanyIn applies the In predicate on the "company" field.
func CompanyIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldCompany, vs...))
}

// CompanyNotIn applies the NotIn predicate on the "company" field.
func CompanyNotIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldCompany, vs...))
}

// CompanyGT applies the GT predicate on the "company" field.
func CompanyGT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldCompany, v))
}

// CompanyGTE applies the GTE predicate on the "company" field.
func CompanyGTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldCompany, v))
}

// CompanyLT applies the LT predicate on the "company" field.
func CompanyLT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldCompany, v))
}

// CompanyLTE applies the LTE predicate on the "company" field.
func CompanyLTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldCompany, v))
}

// CompanyContains applies the Contains predicate on the "company" field.
func CompanyContains(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContains(FieldCompany, v))
}

// CompanyHasPrefix applies the HasPrefix predicate on the "company" field.
func CompanyHasPrefix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasPrefix(FieldCompany, v))
}

// CompanyHasSuffix applies the HasSuffix predicate on the "company" field.
func CompanyHasSuffix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasSuffix(FieldCompany, v))
}

// CompanyIsNil applies the IsNil predicate on the "company" field.
func CompanyIsNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIsNull(FieldCompany))
}

// CompanyNotNil applies the NotNil predicate on the "company" field.
func CompanyNotNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotNull(FieldCompany))
}

// CompanyEqualFold applies the EqualFold predicate on the "company" field.
func CompanyEqualFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEqualFold(FieldCompany, v))
}

// CompanyContainsFold applies the ContainsFold predicate on the "company" field.
func CompanyContainsFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContainsFold(FieldCompany, v))
}

// ExperienceYearsEQ applies the EQ predicate on the "experience_years" field.
func ExperienceYearsEQ(v int) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldExperienceYears, v))
}

// ExperienceYearsNEQ applies the NEQ predicate on the "experience_years" field.
func ExperienceYearsNEQ(v int) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldExperienceYears, v))
}

// ExperienceYearsIn applies the In predicate on the "experience_years" field.
func ExperienceYearsIn(vs ...int) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldExperienceYears, vs...))
}

// ExperienceYearsNotIn applies the NotIn predicate on the "experience_years" field.
func ExperienceYearsNotIn(vs ...int) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldExperienceYears, vs...))
}

// ExperienceYearsGT applies the GT predicate on the "experience_years" field.
func ExperienceYearsGT(v int) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldExperienceYears, v))
}

// ExperienceYearsGTE applies the GTE predicate on the "experience_years" field.
func ExperienceYearsGTE(v int) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldExperienceYears, v))
}

// ExperienceYearsLT applies the LT predicate on the "experience_years" field.
func ExperienceYearsLT(v int) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldExperienceYears, v))
}

// ExperienceYearsLTE applies the LTE predicate on the "experience_years" field.
func ExperienceYearsLTE(v int) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldExperienceYears, v))
}

// ExperienceYearsIsNil applies the IsNil predicate on the "experience_years" field.
func ExperienceYearsIsNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIsNull(FieldExperienceYears))
}

// ExperienceYearsNotNil applies the NotNil predicate on the "experience_years" field.
func ExperienceYearsNotNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotNull(FieldExperienceYears))
}

// SkillsEQ applies the EQ predicate on the "skills" field.
func SkillsEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldSkills, v))
}

// SkillsNEQ applies the NEQ predicate on the "skills" field.
func SkillsNEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldSkills, v))
}

// SkillsIn applies the In predicate on the "skills" field.
func SkillsIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldSkills, vs...))
}

// SkillsNotIn applies the NotIn predicate on the "skills" field.
func SkillsNotIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldSkills, vs...))
}

// SkillsGT applies the GT predicate on the "skills" field.
func SkillsGT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldSkills, v))
}

// SkillsGTE applies the GTE predicate on the "skills" field.
func SkillsGTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldSkills, v))
}

// SkillsLT applies the LT predicate on the "skills" field.
func SkillsLT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldSkills, v))
}

// SkillsLTE applies the LTE predicate on the "skills" field.
func SkillsLTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldSkills, v))
}

// SkillsContains applies the Contains predicate on the "skills" field.
func SkillsContains(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContains(FieldSkills, v))
}

// SkillsHasPrefix applies the HasPrefix predicate on the "skills" field.
func SkillsHasPrefix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasPrefix(FieldSkills, v))
}

// SkillsHasSuffix applies the HasSuffix predicate on the "skills" field.
func SkillsHasSuffix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasSuffix(FieldSkills, v))
}

// SkillsIsNil applies the IsNil predicate on the "skills" field.
func SkillsIsNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIsNull(FieldSkills))
}

// SkillsNotNil applies the NotNil predicate on the "skills" field.
func SkillsNotNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotNull(FieldSkills))
}

// SkillsEqualFold applies the EqualFold predicate on the "skills" field.
func SkillsEqualFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEqualFold(FieldSkills, v))
}

// SkillsContainsFold applies the ContainsFold predicate on the "skills" field.
func SkillsContainsFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContainsFold(FieldSkills, v))
}

// EducationEQ applies the EQ predicate on the "education" field.
func EducationEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldEducation, v))
}

// EducationNEQ applies the NEQ predicate on the "education" field.
func EducationNEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldEducation, v))
}

// EducationIn applies the In predicate on the "education" field.
func EducationIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldEducation, vs...))
}

// EducationNotIn applies the NotIn predicate on the "education" field.
func EducationNotIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldEducation, vs...))
}

// EducationGT applies the GT predicate on the "education" field.
func EducationGT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldEducation, v))
}

// EducationGTE applies the GTE predicate on the "education" field.
func EducationGTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldEducation, v))
}

// EducationLT applies the LT predicate on the "education" field.
func EducationLT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldEducation, v))
}

// EducationLTE applies the LTE predicate on the "education" field.
func EducationLTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldEducation, v))
}

// EducationContains applies the Contains predicate on the "education" field.
func EducationContains(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContains(FieldEducation, v))
}

// EducationHasPrefix applies the HasPrefix predicate on the "education" field.
func EducationHasPrefix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasPrefix(FieldEducation, v))
}

// EducationHasSuffix applies the HasSuffix predicate on the "education" field.
func EducationHasSuffix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasSuffix(FieldEducation, v))
}

// EducationIsNil applies the IsNil predicate on the "education" field.
func EducationIsNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIsNull(FieldEducation))
}

// EducationNotNil applies the NotNil predicate on the "education" field.
func EducationNotNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotNull(FieldEducation))
}

// EducationEqualFold applies the EqualFold predicate on the "education" field.
func EducationEqualFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEqualFold(FieldEducation, v))
}

// EducationContainsFold applies the ContainsFold predicate on the "education" field.
func EducationContainsFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContainsFold(FieldEducation, v))
}

// CertificationsEQ applies the EQ predicate on the "certifications" field.
func CertificationsEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldCertifications, v))
}

// CertificationsNEQ applies the NEQ predicate on the "certifications" field.
func CertificationsNEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldCertifications, v))
}

// CertificationsIn applies the In predicate on the "certifications" field.
func CertificationsIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldCertifications, vs...))
}

// CertificationsNotIn applies the NotIn predicate on the "certifications" field.
func CertificationsNotIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldCertifications, vs...))
}

// CertificationsGT applies the GT predicate on the "certifications" field.
func CertificationsGT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldCertifications, v))
}

// CertificationsGTE applies the GTE predicate on the "certifications" field.
func CertificationsGTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldCertifications, v))
}

// CertificationsLT applies the LT predicate on the "certifications" field.
func CertificationsLT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldCertifications, v))
}

// CertificationsLTE applies the LTE predicate on the "certifications" field.
func CertificationsLTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldCertifications, v))
}

// CertificationsContains applies the Contains predicate on the "certifications" field.
func CertificationsContains(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContains(FieldCertifications, v))
}

// CertificationsHasPrefix applies the HasPrefix predicate on the "certifications" field.
func CertificationsHasPrefix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasPrefix(FieldCertifications, v))
}

// CertificationsHasSuffix applies the HasSuffix predicate on the "certifications" field.
func CertificationsHasSuffix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasSuffix(FieldCertifications, v))
}

// CertificationsIsNil applies the IsNil predicate on the "certifications" field.
func CertificationsIsNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIsNull(FieldCertifications))
}

// CertificationsNotNil applies the NotNil predicate on the "certifications" field.
func CertificationsNotNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotNull(FieldCertifications))
}

// CertificationsEqualFold applies the EqualFold predicate on the "certifications" field.
func CertificationsEqualFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEqualFold(FieldCertifications, v))
}

// CertificationsContainsFold applies the ContainsFold predicate on the "certifications" field.
func CertificationsContainsFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContainsFold(FieldCertifications, v))
}

// AdditionalDataIsNil applies the IsNil predicate on the "additional_data" field.
func AdditionalDataIsNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIsNull(FieldAdditionalData))
}

// AdditionalDataNotNil applies the NotNil predicate on the "additional_data" field.
func AdditionalDataNotNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotNull(FieldAdditionalData))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.ExtractedData {
	return predicate.ExtractedData(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.DocumentScan) predicate.ExtractedData {
	return predicate.ExtractedData(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedData) predicate.ExtractedData {
	return predicate.ExtractedData(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedData) predicate.ExtractedData {
	return predicate.ExtractedData(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedData) predicate.ExtractedData {
	return predicate.ExtractedData(sql.NotPredicates(p))
}
