// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: documents/v1/documents.proto

package documentsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type DocumentScan struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId          string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	DocumentType    string                 `protobuf:"bytes,3,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	FileName        string                 `protobuf:"bytes,4,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	FileExt         string                 `protobuf:"bytes,5,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	Status          string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	ExtractedText   string                 `protobuf:"bytes,7,opt,name=extracted_text,json=extractedText,proto3" json:"extracted_text,omitempty"`
	ConfidenceScore float64                `protobuf:"fixed64,8,opt,name=confidence_score,json=confidenceScore,proto3" json:"confidence_score,omitempty"`
	PageCount       int32                  `protobuf:"varint,9,opt,name=page_count,json=pageCount,proto3" json:"page_count,omitempty"`
	ProcessingTime  float64                `protobuf:"fixed64,10,opt,name=processing_time,json=processingTime,proto3" json:"processing_time,omitempty"`
	FileSize        int64                  `protobuf:"varint,11,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	ErrorMessage    string                 `protobuf:"bytes,12,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,14,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *DocumentScan) Reset() {
	*x = DocumentScan{}
	mi := &file_documents_v1_documents_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DocumentScan) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DocumentScan) ProtoMessage() {}

func (x *DocumentScan) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DocumentScan.ProtoReflect.Descriptor instead.
func (*DocumentScan) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{0}
}

func (x *DocumentScan) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DocumentScan) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *DocumentScan) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *DocumentScan) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *DocumentScan) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *DocumentScan) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *DocumentScan) GetExtractedText() string {
	if x != nil {
		return x.ExtractedText
	}
	return ""
}

func (x *DocumentScan) GetConfidenceScore() float64 {
	if x != nil {
		return x.ConfidenceScore
	}
	return 0
}

func (x *DocumentScan) GetPageCount() int32 {
	if x != nil {
		return x.PageCount
	}
	return 0
}

func (x *DocumentScan) GetProcessingTime() float64 {
	if x != nil {
		return x.ProcessingTime
	}
	return 0
}

func (x *DocumentScan) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *DocumentScan) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *DocumentScan) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *DocumentScan) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ExtractedData struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	DocumentId      string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	FullName        string                 `protobuf:"bytes,2,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Email           string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	Phone           string                 `protobuf:"bytes,4,opt,name=phone,proto3" json:"phone,omitempty"`
	Address         string                 `protobuf:"bytes,5,opt,name=address,proto3" json:"address,omitempty"`
	CurrentPosition string                 `protobuf:"bytes,6,opt,name=current_position,json=currentPosition,proto3" json:"current_position,omitempty"`
	Company         string                 `protobuf:"bytes,7,opt,name=company,proto3" json:"company,omitempty"`
	ExperienceYears int32                  `protobuf:"varint,8,opt,name=experience_years,json=experienceYears,proto3" json:"experience_years,omitempty"`
	Skills          string                 `protobuf:"bytes,9,opt,name=skills,proto3" json:"skills,omitempty"`
	Education       string                 `protobuf:"bytes,10,opt,name=education,proto3" json:"education,omitempty"`
	Certifications  string                 `protobuf:"bytes,11,opt,name=certifications,proto3" json:"certifications,omitempty"`
	// JSON object with anything that has no dedicated column.
	AdditionalDataJson string `protobuf:"bytes,12,opt,name=additional_data_json,json=additionalDataJson,proto3" json:"additional_data_json,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *ExtractedData) Reset() {
	*x = ExtractedData{}
	mi := &file_documents_v1_documents_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractedData) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractedData) ProtoMessage() {}

func (x *ExtractedData) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractedData.ProtoReflect.Descriptor instead.
func (*ExtractedData) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{1}
}

func (x *ExtractedData) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ExtractedData) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *ExtractedData) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *ExtractedData) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *ExtractedData) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *ExtractedData) GetCurrentPosition() string {
	if x != nil {
		return x.CurrentPosition
	}
	return ""
}

func (x *ExtractedData) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

func (x *ExtractedData) GetExperienceYears() int32 {
	if x != nil {
		return x.ExperienceYears
	}
	return 0
}

func (x *ExtractedData) GetSkills() string {
	if x != nil {
		return x.Skills
	}
	return ""
}

func (x *ExtractedData) GetEducation() string {
	if x != nil {
		return x.Education
	}
	return ""
}

func (x *ExtractedData) GetCertifications() string {
	if x != nil {
		return x.Certifications
	}
	return ""
}

func (x *ExtractedData) GetAdditionalDataJson() string {
	if x != nil {
		return x.AdditionalDataJson
	}
	return ""
}

type GeneratedCV struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId          string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	DocumentId      string                 `protobuf:"bytes,3,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	TemplateType    string                 `protobuf:"bytes,4,opt,name=template_type,json=templateType,proto3" json:"template_type,omitempty"`
	Status          string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	CvFile          string                 `protobuf:"bytes,6,opt,name=cv_file,json=cvFile,proto3" json:"cv_file,omitempty"`
	ApplicationForm string                 `protobuf:"bytes,7,opt,name=application_form,json=applicationForm,proto3" json:"application_form,omitempty"`
	MergedDocument  string                 `protobuf:"bytes,8,opt,name=merged_document,json=mergedDocument,proto3" json:"merged_document,omitempty"`
	ErrorMessage    string                 `protobuf:"bytes,9,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GeneratedCV) Reset() {
	*x = GeneratedCV{}
	mi := &file_documents_v1_documents_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GeneratedCV) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GeneratedCV) ProtoMessage() {}

func (x *GeneratedCV) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GeneratedCV.ProtoReflect.Descriptor instead.
func (*GeneratedCV) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{2}
}

func (x *GeneratedCV) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *GeneratedCV) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GeneratedCV) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *GeneratedCV) GetTemplateType() string {
	if x != nil {
		return x.TemplateType
	}
	return ""
}

func (x *GeneratedCV) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GeneratedCV) GetCvFile() string {
	if x != nil {
		return x.CvFile
	}
	return ""
}

func (x *GeneratedCV) GetApplicationForm() string {
	if x != nil {
		return x.ApplicationForm
	}
	return ""
}

func (x *GeneratedCV) GetMergedDocument() string {
	if x != nil {
		return x.MergedDocument
	}
	return ""
}

func (x *GeneratedCV) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *GeneratedCV) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *GeneratedCV) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ProcessingJob struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId         string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	JobType        string                 `protobuf:"bytes,3,opt,name=job_type,json=jobType,proto3" json:"job_type,omitempty"`
	Status         string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	DocumentId     string                 `protobuf:"bytes,5,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	CvId           string                 `protobuf:"bytes,6,opt,name=cv_id,json=cvId,proto3" json:"cv_id,omitempty"`
	Progress       int32                  `protobuf:"varint,7,opt,name=progress,proto3" json:"progress,omitempty"`
	ResultDataJson string                 `protobuf:"bytes,8,opt,name=result_data_json,json=resultDataJson,proto3" json:"result_data_json,omitempty"`
	ErrorDetails   string                 `protobuf:"bytes,9,opt,name=error_details,json=errorDetails,proto3" json:"error_details,omitempty"`
	StartedAt      string                 `protobuf:"bytes,10,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	CompletedAt    string                 `protobuf:"bytes,11,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ProcessingJob) Reset() {
	*x = ProcessingJob{}
	mi := &file_documents_v1_documents_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessingJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessingJob) ProtoMessage() {}

func (x *ProcessingJob) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessingJob.ProtoReflect.Descriptor instead.
func (*ProcessingJob) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{3}
}

func (x *ProcessingJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ProcessingJob) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ProcessingJob) GetJobType() string {
	if x != nil {
		return x.JobType
	}
	return ""
}

func (x *ProcessingJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ProcessingJob) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ProcessingJob) GetCvId() string {
	if x != nil {
		return x.CvId
	}
	return ""
}

func (x *ProcessingJob) GetProgress() int32 {
	if x != nil {
		return x.Progress
	}
	return 0
}

func (x *ProcessingJob) GetResultDataJson() string {
	if x != nil {
		return x.ResultDataJson
	}
	return ""
}

func (x *ProcessingJob) GetErrorDetails() string {
	if x != nil {
		return x.ErrorDetails
	}
	return ""
}

func (x *ProcessingJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ProcessingJob) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

func (x *ProcessingJob) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type UploadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FileName      string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	DocumentType  string                 `protobuf:"bytes,3,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	Content       []byte                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{4}
}

func (x *UploadDocumentRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UploadDocumentRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *UploadDocumentRequest) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *UploadDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *DocumentScan          `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{5}
}

func (x *UploadDocumentResponse) GetDocument() *DocumentScan {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *UploadDocumentResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{6}
}

func (x *GetDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *DocumentScan          `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Extracted     *ExtractedData         `protobuf:"bytes,2,opt,name=extracted,proto3" json:"extracted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{7}
}

func (x *GetDocumentResponse) GetDocument() *DocumentScan {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *GetDocumentResponse) GetExtracted() *ExtractedData {
	if x != nil {
		return x.Extracted
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{8}
}

func (x *ListDocumentsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*DocumentScan        `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{9}
}

func (x *ListDocumentsResponse) GetDocuments() []*DocumentScan {
	if x != nil {
		return x.Documents
	}
	return nil
}

type DeleteDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentRequest) Reset() {
	*x = DeleteDocumentRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentRequest) ProtoMessage() {}

func (x *DeleteDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentRequest.ProtoReflect.Descriptor instead.
func (*DeleteDocumentRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{10}
}

func (x *DeleteDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentResponse) Reset() {
	*x = DeleteDocumentResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentResponse) ProtoMessage() {}

func (x *DeleteDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentResponse.ProtoReflect.Descriptor instead.
func (*DeleteDocumentResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{11}
}

type ReprocessDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessDocumentRequest) Reset() {
	*x = ReprocessDocumentRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessDocumentRequest) ProtoMessage() {}

func (x *ReprocessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ReprocessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{12}
}

func (x *ReprocessDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ReprocessDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessDocumentResponse) Reset() {
	*x = ReprocessDocumentResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessDocumentResponse) ProtoMessage() {}

func (x *ReprocessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ReprocessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{13}
}

func (x *ReprocessDocumentResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type BatchReprocessRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	DocumentIds   []string               `protobuf:"bytes,2,rep,name=document_ids,json=documentIds,proto3" json:"document_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BatchReprocessRequest) Reset() {
	*x = BatchReprocessRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BatchReprocessRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BatchReprocessRequest) ProtoMessage() {}

func (x *BatchReprocessRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BatchReprocessRequest.ProtoReflect.Descriptor instead.
func (*BatchReprocessRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{14}
}

func (x *BatchReprocessRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *BatchReprocessRequest) GetDocumentIds() []string {
	if x != nil {
		return x.DocumentIds
	}
	return nil
}

type BatchReprocessResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Processed     int32                  `protobuf:"varint,1,opt,name=processed,proto3" json:"processed,omitempty"`
	Failed        int32                  `protobuf:"varint,2,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BatchReprocessResponse) Reset() {
	*x = BatchReprocessResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BatchReprocessResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BatchReprocessResponse) ProtoMessage() {}

func (x *BatchReprocessResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BatchReprocessResponse.ProtoReflect.Descriptor instead.
func (*BatchReprocessResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{15}
}

func (x *BatchReprocessResponse) GetProcessed() int32 {
	if x != nil {
		return x.Processed
	}
	return 0
}

func (x *BatchReprocessResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

type GenerateCVRequest struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	UserId       string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	DocumentId   string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	TemplateType string                 `protobuf:"bytes,3,opt,name=template_type,json=templateType,proto3" json:"template_type,omitempty"`
	// optional JSON object of field overrides
	CustomDataJson string `protobuf:"bytes,4,opt,name=custom_data_json,json=customDataJson,proto3" json:"custom_data_json,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GenerateCVRequest) Reset() {
	*x = GenerateCVRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateCVRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateCVRequest) ProtoMessage() {}

func (x *GenerateCVRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateCVRequest.ProtoReflect.Descriptor instead.
func (*GenerateCVRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{16}
}

func (x *GenerateCVRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GenerateCVRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *GenerateCVRequest) GetTemplateType() string {
	if x != nil {
		return x.TemplateType
	}
	return ""
}

func (x *GenerateCVRequest) GetCustomDataJson() string {
	if x != nil {
		return x.CustomDataJson
	}
	return ""
}

type GenerateCVResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cv            *GeneratedCV           `protobuf:"bytes,1,opt,name=cv,proto3" json:"cv,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateCVResponse) Reset() {
	*x = GenerateCVResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateCVResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateCVResponse) ProtoMessage() {}

func (x *GenerateCVResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateCVResponse.ProtoReflect.Descriptor instead.
func (*GenerateCVResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{17}
}

func (x *GenerateCVResponse) GetCv() *GeneratedCV {
	if x != nil {
		return x.Cv
	}
	return nil
}

func (x *GenerateCVResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type RegenerateCVRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegenerateCVRequest) Reset() {
	*x = RegenerateCVRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegenerateCVRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegenerateCVRequest) ProtoMessage() {}

func (x *RegenerateCVRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegenerateCVRequest.ProtoReflect.Descriptor instead.
func (*RegenerateCVRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{18}
}

func (x *RegenerateCVRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type RegenerateCVResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegenerateCVResponse) Reset() {
	*x = RegenerateCVResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegenerateCVResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegenerateCVResponse) ProtoMessage() {}

func (x *RegenerateCVResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegenerateCVResponse.ProtoReflect.Descriptor instead.
func (*RegenerateCVResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{19}
}

func (x *RegenerateCVResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetCVRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCVRequest) Reset() {
	*x = GetCVRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCVRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCVRequest) ProtoMessage() {}

func (x *GetCVRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCVRequest.ProtoReflect.Descriptor instead.
func (*GetCVRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{20}
}

func (x *GetCVRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetCVResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cv            *GeneratedCV           `protobuf:"bytes,1,opt,name=cv,proto3" json:"cv,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCVResponse) Reset() {
	*x = GetCVResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCVResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCVResponse) ProtoMessage() {}

func (x *GetCVResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCVResponse.ProtoReflect.Descriptor instead.
func (*GetCVResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{21}
}

func (x *GetCVResponse) GetCv() *GeneratedCV {
	if x != nil {
		return x.Cv
	}
	return nil
}

type ListCVsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCVsRequest) Reset() {
	*x = ListCVsRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCVsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCVsRequest) ProtoMessage() {}

func (x *ListCVsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCVsRequest.ProtoReflect.Descriptor instead.
func (*ListCVsRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{22}
}

func (x *ListCVsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ListCVsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cvs           []*GeneratedCV         `protobuf:"bytes,1,rep,name=cvs,proto3" json:"cvs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCVsResponse) Reset() {
	*x = ListCVsResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCVsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCVsResponse) ProtoMessage() {}

func (x *ListCVsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCVsResponse.ProtoReflect.Descriptor instead.
func (*ListCVsResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{23}
}

func (x *ListCVsResponse) GetCvs() []*GeneratedCV {
	if x != nil {
		return x.Cvs
	}
	return nil
}

type DeleteCVRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteCVRequest) Reset() {
	*x = DeleteCVRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteCVRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteCVRequest) ProtoMessage() {}

func (x *DeleteCVRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteCVRequest.ProtoReflect.Descriptor instead.
func (*DeleteCVRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{24}
}

func (x *DeleteCVRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteCVResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteCVResponse) Reset() {
	*x = DeleteCVResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteCVResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteCVResponse) ProtoMessage() {}

func (x *DeleteCVResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteCVResponse.ProtoReflect.Descriptor instead.
func (*DeleteCVResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{25}
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{26}
}

func (x *GetJobRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ProcessingJob         `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{27}
}

func (x *GetJobResponse) GetJob() *ProcessingJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type ExportReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportRequest) Reset() {
	*x = ExportReportRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportRequest) ProtoMessage() {}

func (x *ExportReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportRequest.ProtoReflect.Descriptor instead.
func (*ExportReportRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{28}
}

func (x *ExportReportRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ExportReportRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportReportRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportResponse) Reset() {
	*x = ExportReportResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportResponse) ProtoMessage() {}

func (x *ExportReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportResponse.ProtoReflect.Descriptor instead.
func (*ExportReportResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{29}
}

func (x *ExportReportResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportReportResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_documents_v1_documents_proto protoreflect.FileDescriptor

const file_documents_v1_documents_proto_rawDesc = "" +
	"\n" +
	"\x1cdocuments/v1/documents.proto\x12\fdocuments.v1\"\xc6\x03\n" +
	"\fDocumentScan\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12#\n" +
	"\rdocument_type\x18\x03 \x01(\tR\fdocumentType\x12\x1b\n" +
	"\tfile_name\x18\x04 \x01(\tR\bfileName\x12\x19\n" +
	"\bfile_ext\x18\x05 \x01(\tR\afileExt\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12%\n" +
	"\x0eextracted_text\x18\a \x01(\tR\rextractedText\x12)\n" +
	"\x10confidence_score\x18\b \x01(\x01R\x0fconfidenceScore\x12\x1d\n" +
	"\n" +
	"page_count\x18\t \x01(\x05R\tpageCount\x12'\n" +
	"\x0fprocessing_time\x18\n" +
	" \x01(\x01R\x0eprocessingTime\x12\x1b\n" +
	"\tfile_size\x18\v \x01(\x03R\bfileSize\x12#\n" +
	"\rerror_message\x18\f \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0e \x01(\tR\tupdatedAt\"\x93\x03\n" +
	"\rExtractedData\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1b\n" +
	"\tfull_name\x18\x02 \x01(\tR\bfullName\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\x04 \x01(\tR\x05phone\x12\x18\n" +
	"\aaddress\x18\x05 \x01(\tR\aaddress\x12)\n" +
	"\x10current_position\x18\x06 \x01(\tR\x0fcurrentPosition\x12\x18\n" +
	"\acompany\x18\a \x01(\tR\acompany\x12)\n" +
	"\x10experience_years\x18\b \x01(\x05R\x0fexperienceYears\x12\x16\n" +
	"\x06skills\x18\t \x01(\tR\x06skills\x12\x1c\n" +
	"\teducation\x18\n" +
	" \x01(\tR\teducation\x12&\n" +
	"\x0ecertifications\x18\v \x01(\tR\x0ecertifications\x120\n" +
	"\x14additional_data_json\x18\f \x01(\tR\x12additionalDataJson\"\xe4\x02\n" +
	"\vGeneratedCV\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x1f\n" +
	"\vdocument_id\x18\x03 \x01(\tR\n" +
	"documentId\x12#\n" +
	"\rtemplate_type\x18\x04 \x01(\tR\ftemplateType\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x17\n" +
	"\acv_file\x18\x06 \x01(\tR\x06cvFile\x12)\n" +
	"\x10application_form\x18\a \x01(\tR\x0fapplicationForm\x12'\n" +
	"\x0fmerged_document\x18\b \x01(\tR\x0emergedDocument\x12#\n" +
	"\rerror_message\x18\t \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"\xed\x02\n" +
	"\rProcessingJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x19\n" +
	"\bjob_type\x18\x03 \x01(\tR\ajobType\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x1f\n" +
	"\vdocument_id\x18\x05 \x01(\tR\n" +
	"documentId\x12\x13\n" +
	"\x05cv_id\x18\x06 \x01(\tR\x04cvId\x12\x1a\n" +
	"\bprogress\x18\a \x01(\x05R\bprogress\x12(\n" +
	"\x10result_data_json\x18\b \x01(\tR\x0eresultDataJson\x12#\n" +
	"\rerror_details\x18\t \x01(\tR\ferrorDetails\x12\x1d\n" +
	"\n" +
	"started_at\x18\n" +
	" \x01(\tR\tstartedAt\x12!\n" +
	"\fcompleted_at\x18\v \x01(\tR\vcompletedAt\x12\x1d\n" +
	"\n" +
	"created_at\x18\f \x01(\tR\tcreatedAt\"\x8c\x01\n" +
	"\x15UploadDocumentRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName\x12#\n" +
	"\rdocument_type\x18\x03 \x01(\tR\fdocumentType\x12\x18\n" +
	"\acontent\x18\x04 \x01(\fR\acontent\"g\n" +
	"\x16UploadDocumentResponse\x126\n" +
	"\bdocument\x18\x01 \x01(\v2\x1a.documents.v1.DocumentScanR\bdocument\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\"$\n" +
	"\x12GetDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x88\x01\n" +
	"\x13GetDocumentResponse\x126\n" +
	"\bdocument\x18\x01 \x01(\v2\x1a.documents.v1.DocumentScanR\bdocument\x129\n" +
	"\textracted\x18\x02 \x01(\v2\x1b.documents.v1.ExtractedDataR\textracted\"/\n" +
	"\x14ListDocumentsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"Q\n" +
	"\x15ListDocumentsResponse\x128\n" +
	"\tdocuments\x18\x01 \x03(\v2\x1a.documents.v1.DocumentScanR\tdocuments\"'\n" +
	"\x15DeleteDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x18\n" +
	"\x16DeleteDocumentResponse\"*\n" +
	"\x18ReprocessDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"2\n" +
	"\x19ReprocessDocumentResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"S\n" +
	"\x15BatchReprocessRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12!\n" +
	"\fdocument_ids\x18\x02 \x03(\tR\vdocumentIds\"N\n" +
	"\x16BatchReprocessResponse\x12\x1c\n" +
	"\tprocessed\x18\x01 \x01(\x05R\tprocessed\x12\x16\n" +
	"\x06failed\x18\x02 \x01(\x05R\x06failed\"\x9c\x01\n" +
	"\x11GenerateCVRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12#\n" +
	"\rtemplate_type\x18\x03 \x01(\tR\ftemplateType\x12(\n" +
	"\x10custom_data_json\x18\x04 \x01(\tR\x0ecustomDataJson\"V\n" +
	"\x12GenerateCVResponse\x12)\n" +
	"\x02cv\x18\x01 \x01(\v2\x19.documents.v1.GeneratedCVR\x02cv\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\"%\n" +
	"\x13RegenerateCVRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"-\n" +
	"\x14RegenerateCVResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\x1e\n" +
	"\fGetCVRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\":\n" +
	"\rGetCVResponse\x12)\n" +
	"\x02cv\x18\x01 \x01(\v2\x19.documents.v1.GeneratedCVR\x02cv\")\n" +
	"\x0eListCVsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\">\n" +
	"\x0fListCVsResponse\x12+\n" +
	"\x03cvs\x18\x01 \x03(\v2\x19.documents.v1.GeneratedCVR\x03cvs\"!\n" +
	"\x0fDeleteCVRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x12\n" +
	"\x10DeleteCVResponse\"\x1f\n" +
	"\rGetJobRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"?\n" +
	"\x0eGetJobResponse\x12-\n" +
	"\x03job\x18\x01 \x01(\v2\x1b.documents.v1.ProcessingJobR\x03job\"d\n" +
	"\x13ExportReportRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"F\n" +
	"\x14ExportReportResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xd6\b\n" +
	"\x10DocumentsService\x12[\n" +
	"\x0eUploadDocument\x12#.documents.v1.UploadDocumentRequest\x1a$.documents.v1.UploadDocumentResponse\x12R\n" +
	"\vGetDocument\x12 .documents.v1.GetDocumentRequest\x1a!.documents.v1.GetDocumentResponse\x12X\n" +
	"\rListDocuments\x12\".documents.v1.ListDocumentsRequest\x1a#.documents.v1.ListDocumentsResponse\x12[\n" +
	"\x0eDeleteDocument\x12#.documents.v1.DeleteDocumentRequest\x1a$.documents.v1.DeleteDocumentResponse\x12d\n" +
	"\x11ReprocessDocument\x12&.documents.v1.ReprocessDocumentRequest\x1a'.documents.v1.ReprocessDocumentResponse\x12[\n" +
	"\x0eBatchReprocess\x12#.documents.v1.BatchReprocessRequest\x1a$.documents.v1.BatchReprocessResponse\x12O\n" +
	"\n" +
	"GenerateCV\x12\x1f.documents.v1.GenerateCVRequest\x1a .documents.v1.GenerateCVResponse\x12U\n" +
	"\fRegenerateCV\x12!.documents.v1.RegenerateCVRequest\x1a\".documents.v1.RegenerateCVResponse\x12@\n" +
	"\x05GetCV\x12\x1a.documents.v1.GetCVRequest\x1a\x1b.documents.v1.GetCVResponse\x12F\n" +
	"\aListCVs\x12\x1c.documents.v1.ListCVsRequest\x1a\x1d.documents.v1.ListCVsResponse\x12I\n" +
	"\bDeleteCV\x12\x1d.documents.v1.DeleteCVRequest\x1a\x1e.documents.v1.DeleteCVResponse\x12C\n" +
	"\x06GetJob\x12\x1b.documents.v1.GetJobRequest\x1a\x1c.documents.v1.GetJobResponse\x12U\n" +
	"\fExportReport\x12!.documents.v1.ExportReportRequest\x1a\".documents.v1.ExportReportResponseBKZIgithub.com/mausam-code/complete-agency/gen/proto/documents/v1;documentsv1b\x06proto3"

var (
	file_documents_v1_documents_proto_rawDescOnce sync.Once
	file_documents_v1_documents_proto_rawDescData []byte
)

func file_documents_v1_documents_proto_rawDescGZIP() []byte {
	file_documents_v1_documents_proto_rawDescOnce.Do(func() {
		file_documents_v1_documents_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_documents_v1_documents_proto_rawDesc), len(file_documents_v1_documents_proto_rawDesc)))
	})
	return file_documents_v1_documents_proto_rawDescData
}

var file_documents_v1_documents_proto_msgTypes = make([]protoimpl.MessageInfo, 30)
var file_documents_v1_documents_proto_goTypes = []any{
	(*DocumentScan)(nil),              // 0: documents.v1.DocumentScan
	(*ExtractedData)(nil),             // 1: documents.v1.ExtractedData
	(*GeneratedCV)(nil),               // 2: documents.v1.GeneratedCV
	(*ProcessingJob)(nil),             // 3: documents.v1.ProcessingJob
	(*UploadDocumentRequest)(nil),     // 4: documents.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),    // 5: documents.v1.UploadDocumentResponse
	(*GetDocumentRequest)(nil),        // 6: documents.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),       // 7: documents.v1.GetDocumentResponse
	(*ListDocumentsRequest)(nil),      // 8: documents.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),     // 9: documents.v1.ListDocumentsResponse
	(*DeleteDocumentRequest)(nil),     // 10: documents.v1.DeleteDocumentRequest
	(*DeleteDocumentResponse)(nil),    // 11: documents.v1.DeleteDocumentResponse
	(*ReprocessDocumentRequest)(nil),  // 12: documents.v1.ReprocessDocumentRequest
	(*ReprocessDocumentResponse)(nil), // 13: documents.v1.ReprocessDocumentResponse
	(*BatchReprocessRequest)(nil),     // 14: documents.v1.BatchReprocessRequest
	(*BatchReprocessResponse)(nil),    // 15: documents.v1.BatchReprocessResponse
	(*GenerateCVRequest)(nil),         // 16: documents.v1.GenerateCVRequest
	(*GenerateCVResponse)(nil),        // 17: documents.v1.GenerateCVResponse
	(*RegenerateCVRequest)(nil),       // 18: documents.v1.RegenerateCVRequest
	(*RegenerateCVResponse)(nil),      // 19: documents.v1.RegenerateCVResponse
	(*GetCVRequest)(nil),              // 20: documents.v1.GetCVRequest
	(*GetCVResponse)(nil),             // 21: documents.v1.GetCVResponse
	(*ListCVsRequest)(nil),            // 22: documents.v1.ListCVsRequest
	(*ListCVsResponse)(nil),           // 23: documents.v1.ListCVsResponse
	(*DeleteCVRequest)(nil),           // 24: documents.v1.DeleteCVRequest
	(*DeleteCVResponse)(nil),          // 25: documents.v1.DeleteCVResponse
	(*GetJobRequest)(nil),             // 26: documents.v1.GetJobRequest
	(*GetJobResponse)(nil),            // 27: documents.v1.GetJobResponse
	(*ExportReportRequest)(nil),       // 28: documents.v1.ExportReportRequest
	(*ExportReportResponse)(nil),      // 29: documents.v1.ExportReportResponse
}
var file_documents_v1_documents_proto_depIdxs = []int32{
	0,  // 0: documents.v1.UploadDocumentResponse.document:type_name -> documents.v1.DocumentScan
	0,  // 1: documents.v1.GetDocumentResponse.document:type_name -> documents.v1.DocumentScan
	1,  // 2: documents.v1.GetDocumentResponse.extracted:type_name -> documents.v1.ExtractedData
	0,  // 3: documents.v1.ListDocumentsResponse.documents:type_name -> documents.v1.DocumentScan
	2,  // 4: documents.v1.GenerateCVResponse.cv:type_name -> documents.v1.GeneratedCV
	2,  // 5: documents.v1.GetCVResponse.cv:type_name -> documents.v1.GeneratedCV
	2,  // 6: documents.v1.ListCVsResponse.cvs:type_name -> documents.v1.GeneratedCV
	3,  // 7: documents.v1.GetJobResponse.job:type_name -> documents.v1.ProcessingJob
	4,  // 8: documents.v1.DocumentsService.UploadDocument:input_type -> documents.v1.UploadDocumentRequest
	6,  // 9: documents.v1.DocumentsService.GetDocument:input_type -> documents.v1.GetDocumentRequest
	8,  // 10: documents.v1.DocumentsService.ListDocuments:input_type -> documents.v1.ListDocumentsRequest
	10, // 11: documents.v1.DocumentsService.DeleteDocument:input_type -> documents.v1.DeleteDocumentRequest
	12, // 12: documents.v1.DocumentsService.ReprocessDocument:input_type -> documents.v1.ReprocessDocumentRequest
	14, // 13: documents.v1.DocumentsService.BatchReprocess:input_type -> documents.v1.BatchReprocessRequest
	16, // 14: documents.v1.DocumentsService.GenerateCV:input_type -> documents.v1.GenerateCVRequest
	18, // 15: documents.v1.DocumentsService.RegenerateCV:input_type -> documents.v1.RegenerateCVRequest
	20, // 16: documents.v1.DocumentsService.GetCV:input_type -> documents.v1.GetCVRequest
	22, // 17: documents.v1.DocumentsService.ListCVs:input_type -> documents.v1.ListCVsRequest
	24, // 18: documents.v1.DocumentsService.DeleteCV:input_type -> documents.v1.DeleteCVRequest
	26, // 19: documents.v1.DocumentsService.GetJob:input_type -> documents.v1.GetJobRequest
	28, // 20: documents.v1.DocumentsService.ExportReport:input_type -> documents.v1.ExportReportRequest
	5,  // 21: documents.v1.DocumentsService.UploadDocument:output_type -> documents.v1.UploadDocumentResponse
	7,  // 22: documents.v1.DocumentsService.GetDocument:output_type -> documents.v1.GetDocumentResponse
	9,  // 23: documents.v1.DocumentsService.ListDocuments:output_type -> documents.v1.ListDocumentsResponse
	11, // 24: documents.v1.DocumentsService.DeleteDocument:output_type -> documents.v1.DeleteDocumentResponse
	13, // 25: documents.v1.DocumentsService.ReprocessDocument:output_type -> documents.v1.ReprocessDocumentResponse
	15, // 26: documents.v1.DocumentsService.BatchReprocess:output_type -> documents.v1.BatchReprocessResponse
	17, // 27: documents.v1.DocumentsService.GenerateCV:output_type -> documents.v1.GenerateCVResponse
	19, // 28: documents.v1.DocumentsService.RegenerateCV:output_type -> documents.v1.RegenerateCVResponse
	21, // 29: documents.v1.DocumentsService.GetCV:output_type -> documents.v1.GetCVResponse
	23, // 30: documents.v1.DocumentsService.ListCVs:output_type -> documents.v1.ListCVsResponse
	25, // 31: documents.v1.DocumentsService.DeleteCV:output_type -> documents.v1.DeleteCVResponse
	27, // 32: documents.v1.DocumentsService.GetJob:output_type -> documents.v1.GetJobResponse
	29, // 33: documents.v1.DocumentsService.ExportReport:output_type -> documents.v1.ExportReportResponse
	21, // [21:34] is the sub-list for method output_type
	8,  // [8:21] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_documents_v1_documents_proto_init() }
func file_documents_v1_documents_proto_init() {
	if File_documents_v1_documents_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_documents_v1_documents_proto_rawDesc), len(file_documents_v1_documents_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   30,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_documents_v1_documents_proto_goTypes,
		DependencyIndexes: file_documents_v1_documents_proto_depIdxs,
		MessageInfos:      file_documents_v1_documents_proto_msgTypes,
	}.Build()
	File_documents_v1_documents_proto = out.File
	file_documents_v1_documents_proto_goTypes = nil
	file_documents_v1_documents_proto_depIdxs = nil
}
