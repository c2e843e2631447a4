// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: clearance/v1/clearance.proto

package clearancev1

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

type Faculty struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Email         string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	Department    string                 `protobuf:"bytes,4,opt,name=department,proto3" json:"department,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Faculty) Reset() {
	*x = Faculty{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Faculty) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Faculty) ProtoMessage() {}

func (x *Faculty) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Faculty.ProtoReflect.Descriptor instead.
func (*Faculty) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{0}
}

func (x *Faculty) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Faculty) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Faculty) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Faculty) GetDepartment() string {
	if x != nil {
		return x.Department
	}
	return ""
}

func (x *Faculty) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Faculty) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ClearanceSet struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FacultyId     string                 `protobuf:"bytes,2,opt,name=faculty_id,json=facultyId,proto3" json:"faculty_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	AcademicYear  string                 `protobuf:"bytes,4,opt,name=academic_year,json=academicYear,proto3" json:"academic_year,omitempty"`
	RequiredTypes []string               `protobuf:"bytes,5,rep,name=required_types,json=requiredTypes,proto3" json:"required_types,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearanceSet) Reset() {
	*x = ClearanceSet{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearanceSet) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearanceSet) ProtoMessage() {}

func (x *ClearanceSet) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearanceSet.ProtoReflect.Descriptor instead.
func (*ClearanceSet) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{1}
}

func (x *ClearanceSet) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ClearanceSet) GetFacultyId() string {
	if x != nil {
		return x.FacultyId
	}
	return ""
}

func (x *ClearanceSet) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ClearanceSet) GetAcademicYear() string {
	if x != nil {
		return x.AcademicYear
	}
	return ""
}

func (x *ClearanceSet) GetRequiredTypes() []string {
	if x != nil {
		return x.RequiredTypes
	}
	return nil
}

func (x *ClearanceSet) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *ClearanceSet) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Document struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ClearanceSetId  string                 `protobuf:"bytes,2,opt,name=clearance_set_id,json=clearanceSetId,proto3" json:"clearance_set_id,omitempty"`
	ClearanceType   string                 `protobuf:"bytes,3,opt,name=clearance_type,json=clearanceType,proto3" json:"clearance_type,omitempty"`
	SourcePath      string                 `protobuf:"bytes,4,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	FileName        string                 `protobuf:"bytes,5,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	ClearanceStatus string                 `protobuf:"bytes,6,opt,name=clearance_status,json=clearanceStatus,proto3" json:"clearance_status,omitempty"`
	PredictedStatus string                 `protobuf:"bytes,7,opt,name=predicted_status,json=predictedStatus,proto3" json:"predicted_status,omitempty"`
	PredictedAt     string                 `protobuf:"bytes,8,opt,name=predicted_at,json=predictedAt,proto3" json:"predicted_at,omitempty"`
	UploadedAt      string                 `protobuf:"bytes,9,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{2}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetClearanceSetId() string {
	if x != nil {
		return x.ClearanceSetId
	}
	return ""
}

func (x *Document) GetClearanceType() string {
	if x != nil {
		return x.ClearanceType
	}
	return ""
}

func (x *Document) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *Document) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Document) GetClearanceStatus() string {
	if x != nil {
		return x.ClearanceStatus
	}
	return ""
}

func (x *Document) GetPredictedStatus() string {
	if x != nil {
		return x.PredictedStatus
	}
	return ""
}

func (x *Document) GetPredictedAt() string {
	if x != nil {
		return x.PredictedAt
	}
	return ""
}

func (x *Document) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type CreateFacultyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	Department    string                 `protobuf:"bytes,3,opt,name=department,proto3" json:"department,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateFacultyRequest) Reset() {
	*x = CreateFacultyRequest{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateFacultyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateFacultyRequest) ProtoMessage() {}

func (x *CreateFacultyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateFacultyRequest.ProtoReflect.Descriptor instead.
func (*CreateFacultyRequest) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{3}
}

func (x *CreateFacultyRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateFacultyRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreateFacultyRequest) GetDepartment() string {
	if x != nil {
		return x.Department
	}
	return ""
}

type CreateFacultyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Faculty       *Faculty               `protobuf:"bytes,1,opt,name=faculty,proto3" json:"faculty,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateFacultyResponse) Reset() {
	*x = CreateFacultyResponse{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateFacultyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateFacultyResponse) ProtoMessage() {}

func (x *CreateFacultyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateFacultyResponse.ProtoReflect.Descriptor instead.
func (*CreateFacultyResponse) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{4}
}

func (x *CreateFacultyResponse) GetFaculty() *Faculty {
	if x != nil {
		return x.Faculty
	}
	return nil
}

type CreateClearanceSetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FacultyId     string                 `protobuf:"bytes,1,opt,name=faculty_id,json=facultyId,proto3" json:"faculty_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	AcademicYear  string                 `protobuf:"bytes,3,opt,name=academic_year,json=academicYear,proto3" json:"academic_year,omitempty"`
	RequiredTypes []string               `protobuf:"bytes,4,rep,name=required_types,json=requiredTypes,proto3" json:"required_types,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateClearanceSetRequest) Reset() {
	*x = CreateClearanceSetRequest{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateClearanceSetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateClearanceSetRequest) ProtoMessage() {}

func (x *CreateClearanceSetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateClearanceSetRequest.ProtoReflect.Descriptor instead.
func (*CreateClearanceSetRequest) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{5}
}

func (x *CreateClearanceSetRequest) GetFacultyId() string {
	if x != nil {
		return x.FacultyId
	}
	return ""
}

func (x *CreateClearanceSetRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateClearanceSetRequest) GetAcademicYear() string {
	if x != nil {
		return x.AcademicYear
	}
	return ""
}

func (x *CreateClearanceSetRequest) GetRequiredTypes() []string {
	if x != nil {
		return x.RequiredTypes
	}
	return nil
}

type CreateClearanceSetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClearanceSet  *ClearanceSet          `protobuf:"bytes,1,opt,name=clearance_set,json=clearanceSet,proto3" json:"clearance_set,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateClearanceSetResponse) Reset() {
	*x = CreateClearanceSetResponse{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateClearanceSetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateClearanceSetResponse) ProtoMessage() {}

func (x *CreateClearanceSetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateClearanceSetResponse.ProtoReflect.Descriptor instead.
func (*CreateClearanceSetResponse) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{6}
}

func (x *CreateClearanceSetResponse) GetClearanceSet() *ClearanceSet {
	if x != nil {
		return x.ClearanceSet
	}
	return nil
}

type UploadDocumentRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ClearanceSetId string                 `protobuf:"bytes,1,opt,name=clearance_set_id,json=clearanceSetId,proto3" json:"clearance_set_id,omitempty"`
	ClearanceType  string                 `protobuf:"bytes,2,opt,name=clearance_type,json=clearanceType,proto3" json:"clearance_type,omitempty"`
	Path           string                 `protobuf:"bytes,3,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[7]
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
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{7}
}

func (x *UploadDocumentRequest) GetClearanceSetId() string {
	if x != nil {
		return x.ClearanceSetId
	}
	return ""
}

func (x *UploadDocumentRequest) GetClearanceType() string {
	if x != nil {
		return x.ClearanceType
	}
	return ""
}

func (x *UploadDocumentRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type UploadDocumentResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Document       *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	Outcome        *DocumentOutcome       `protobuf:"bytes,4,opt,name=outcome,proto3" json:"outcome,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[8]
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
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{8}
}

func (x *UploadDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *UploadDocumentResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *UploadDocumentResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *UploadDocumentResponse) GetOutcome() *DocumentOutcome {
	if x != nil {
		return x.Outcome
	}
	return nil
}

type UploadDirectoryRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ClearanceSetId string                 `protobuf:"bytes,1,opt,name=clearance_set_id,json=clearanceSetId,proto3" json:"clearance_set_id,omitempty"`
	ClearanceType  string                 `protobuf:"bytes,2,opt,name=clearance_type,json=clearanceType,proto3" json:"clearance_type,omitempty"`
	Root           string                 `protobuf:"bytes,3,opt,name=root,proto3" json:"root,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UploadDirectoryRequest) Reset() {
	*x = UploadDirectoryRequest{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDirectoryRequest) ProtoMessage() {}

func (x *UploadDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDirectoryRequest.ProtoReflect.Descriptor instead.
func (*UploadDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{9}
}

func (x *UploadDirectoryRequest) GetClearanceSetId() string {
	if x != nil {
		return x.ClearanceSetId
	}
	return ""
}

func (x *UploadDirectoryRequest) GetClearanceType() string {
	if x != nil {
		return x.ClearanceType
	}
	return ""
}

func (x *UploadDirectoryRequest) GetRoot() string {
	if x != nil {
		return x.Root
	}
	return ""
}

type UploadDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Results       []*IngestionResult     `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
	Stats         *DirStats              `protobuf:"bytes,2,opt,name=stats,proto3" json:"stats,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDirectoryResponse) Reset() {
	*x = UploadDirectoryResponse{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDirectoryResponse) ProtoMessage() {}

func (x *UploadDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDirectoryResponse.ProtoReflect.Descriptor instead.
func (*UploadDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{10}
}

func (x *UploadDirectoryResponse) GetResults() []*IngestionResult {
	if x != nil {
		return x.Results
	}
	return nil
}

func (x *UploadDirectoryResponse) GetStats() *DirStats {
	if x != nil {
		return x.Stats
	}
	return nil
}

type IngestionResult struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentId     string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	SourcePath     string                 `protobuf:"bytes,2,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Error          string                 `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestionResult) Reset() {
	*x = IngestionResult{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestionResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestionResult) ProtoMessage() {}

func (x *IngestionResult) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestionResult.ProtoReflect.Descriptor instead.
func (*IngestionResult) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{11}
}

func (x *IngestionResult) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *IngestionResult) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestionResult) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestionResult) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestionResult) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type DirStats struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       int32                  `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       int32                  `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     int32                  `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Failed        int32                  `protobuf:"varint,4,opt,name=failed,proto3" json:"failed,omitempty"`
	Deduplicated  int32                  `protobuf:"varint,5,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DirStats) Reset() {
	*x = DirStats{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DirStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DirStats) ProtoMessage() {}

func (x *DirStats) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DirStats.ProtoReflect.Descriptor instead.
func (*DirStats) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{12}
}

func (x *DirStats) GetScanned() int32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *DirStats) GetMatched() int32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *DirStats) GetSucceeded() int32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *DirStats) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *DirStats) GetDeduplicated() int32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

type DocumentOutcome struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	DocumentId      string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	PredictedStatus string                 `protobuf:"bytes,2,opt,name=predicted_status,json=predictedStatus,proto3" json:"predicted_status,omitempty"`
	Category        string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	Method          string                 `protobuf:"bytes,4,opt,name=method,proto3" json:"method,omitempty"`
	Warnings        []string               `protobuf:"bytes,5,rep,name=warnings,proto3" json:"warnings,omitempty"`
	Error           string                 `protobuf:"bytes,6,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *DocumentOutcome) Reset() {
	*x = DocumentOutcome{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DocumentOutcome) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DocumentOutcome) ProtoMessage() {}

func (x *DocumentOutcome) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DocumentOutcome.ProtoReflect.Descriptor instead.
func (*DocumentOutcome) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{13}
}

func (x *DocumentOutcome) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *DocumentOutcome) GetPredictedStatus() string {
	if x != nil {
		return x.PredictedStatus
	}
	return ""
}

func (x *DocumentOutcome) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *DocumentOutcome) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *DocumentOutcome) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

func (x *DocumentOutcome) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ListDocumentsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ClearanceSetId string                 `protobuf:"bytes,1,opt,name=clearance_set_id,json=clearanceSetId,proto3" json:"clearance_set_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[14]
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
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{14}
}

func (x *ListDocumentsRequest) GetClearanceSetId() string {
	if x != nil {
		return x.ClearanceSetId
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[15]
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
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{15}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type PredictSetRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ClearanceSetId string                 `protobuf:"bytes,1,opt,name=clearance_set_id,json=clearanceSetId,proto3" json:"clearance_set_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *PredictSetRequest) Reset() {
	*x = PredictSetRequest{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PredictSetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PredictSetRequest) ProtoMessage() {}

func (x *PredictSetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PredictSetRequest.ProtoReflect.Descriptor instead.
func (*PredictSetRequest) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{16}
}

func (x *PredictSetRequest) GetClearanceSetId() string {
	if x != nil {
		return x.ClearanceSetId
	}
	return ""
}

type PredictSetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Outcomes      []*DocumentOutcome     `protobuf:"bytes,1,rep,name=outcomes,proto3" json:"outcomes,omitempty"`
	Evaluation    *Evaluation            `protobuf:"bytes,2,opt,name=evaluation,proto3" json:"evaluation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PredictSetResponse) Reset() {
	*x = PredictSetResponse{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PredictSetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PredictSetResponse) ProtoMessage() {}

func (x *PredictSetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PredictSetResponse.ProtoReflect.Descriptor instead.
func (*PredictSetResponse) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{17}
}

func (x *PredictSetResponse) GetOutcomes() []*DocumentOutcome {
	if x != nil {
		return x.Outcomes
	}
	return nil
}

func (x *PredictSetResponse) GetEvaluation() *Evaluation {
	if x != nil {
		return x.Evaluation
	}
	return nil
}

type EvaluateSetRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ClearanceSetId string                 `protobuf:"bytes,1,opt,name=clearance_set_id,json=clearanceSetId,proto3" json:"clearance_set_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *EvaluateSetRequest) Reset() {
	*x = EvaluateSetRequest{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EvaluateSetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EvaluateSetRequest) ProtoMessage() {}

func (x *EvaluateSetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EvaluateSetRequest.ProtoReflect.Descriptor instead.
func (*EvaluateSetRequest) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{18}
}

func (x *EvaluateSetRequest) GetClearanceSetId() string {
	if x != nil {
		return x.ClearanceSetId
	}
	return ""
}

type EvaluateSetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Evaluation    *Evaluation            `protobuf:"bytes,1,opt,name=evaluation,proto3" json:"evaluation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EvaluateSetResponse) Reset() {
	*x = EvaluateSetResponse{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EvaluateSetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EvaluateSetResponse) ProtoMessage() {}

func (x *EvaluateSetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EvaluateSetResponse.ProtoReflect.Descriptor instead.
func (*EvaluateSetResponse) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{19}
}

func (x *EvaluateSetResponse) GetEvaluation() *Evaluation {
	if x != nil {
		return x.Evaluation
	}
	return nil
}

type Evaluation struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MissingTypes  []string               `protobuf:"bytes,1,rep,name=missing_types,json=missingTypes,proto3" json:"missing_types,omitempty"`
	Complete      bool                   `protobuf:"varint,2,opt,name=complete,proto3" json:"complete,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Evaluation) Reset() {
	*x = Evaluation{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Evaluation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Evaluation) ProtoMessage() {}

func (x *Evaluation) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Evaluation.ProtoReflect.Descriptor instead.
func (*Evaluation) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{20}
}

func (x *Evaluation) GetMissingTypes() []string {
	if x != nil {
		return x.MissingTypes
	}
	return nil
}

func (x *Evaluation) GetComplete() bool {
	if x != nil {
		return x.Complete
	}
	return false
}

type ExportSetReportRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ClearanceSetId string                 `protobuf:"bytes,1,opt,name=clearance_set_id,json=clearanceSetId,proto3" json:"clearance_set_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ExportSetReportRequest) Reset() {
	*x = ExportSetReportRequest{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportSetReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportSetReportRequest) ProtoMessage() {}

func (x *ExportSetReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportSetReportRequest.ProtoReflect.Descriptor instead.
func (*ExportSetReportRequest) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{21}
}

func (x *ExportSetReportRequest) GetClearanceSetId() string {
	if x != nil {
		return x.ClearanceSetId
	}
	return ""
}

type ExportSetReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportSetReportResponse) Reset() {
	*x = ExportSetReportResponse{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportSetReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportSetReportResponse) ProtoMessage() {}

func (x *ExportSetReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportSetReportResponse.ProtoReflect.Descriptor instead.
func (*ExportSetReportResponse) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{22}
}

func (x *ExportSetReportResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ClassifyFlagsRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	AdminClearance    bool                   `protobuf:"varint,1,opt,name=admin_clearance,json=adminClearance,proto3" json:"admin_clearance,omitempty"`
	ResearchClearance bool                   `protobuf:"varint,2,opt,name=research_clearance,json=researchClearance,proto3" json:"research_clearance,omitempty"`
	GradeSubmission   bool                   `protobuf:"varint,3,opt,name=grade_submission,json=gradeSubmission,proto3" json:"grade_submission,omitempty"`
	LibraryClearance  bool                   `protobuf:"varint,4,opt,name=library_clearance,json=libraryClearance,proto3" json:"library_clearance,omitempty"`
	EquipmentReturned bool                   `protobuf:"varint,5,opt,name=equipment_returned,json=equipmentReturned,proto3" json:"equipment_returned,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *ClassifyFlagsRequest) Reset() {
	*x = ClassifyFlagsRequest{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClassifyFlagsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClassifyFlagsRequest) ProtoMessage() {}

func (x *ClassifyFlagsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClassifyFlagsRequest.ProtoReflect.Descriptor instead.
func (*ClassifyFlagsRequest) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{23}
}

func (x *ClassifyFlagsRequest) GetAdminClearance() bool {
	if x != nil {
		return x.AdminClearance
	}
	return false
}

func (x *ClassifyFlagsRequest) GetResearchClearance() bool {
	if x != nil {
		return x.ResearchClearance
	}
	return false
}

func (x *ClassifyFlagsRequest) GetGradeSubmission() bool {
	if x != nil {
		return x.GradeSubmission
	}
	return false
}

func (x *ClassifyFlagsRequest) GetLibraryClearance() bool {
	if x != nil {
		return x.LibraryClearance
	}
	return false
}

func (x *ClassifyFlagsRequest) GetEquipmentReturned() bool {
	if x != nil {
		return x.EquipmentReturned
	}
	return false
}

type ClassifyFlagsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Labels        []string               `protobuf:"bytes,1,rep,name=labels,proto3" json:"labels,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClassifyFlagsResponse) Reset() {
	*x = ClassifyFlagsResponse{}
	mi := &file_clearance_v1_clearance_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClassifyFlagsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClassifyFlagsResponse) ProtoMessage() {}

func (x *ClassifyFlagsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_clearance_v1_clearance_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClassifyFlagsResponse.ProtoReflect.Descriptor instead.
func (*ClassifyFlagsResponse) Descriptor() ([]byte, []int) {
	return file_clearance_v1_clearance_proto_rawDescGZIP(), []int{24}
}

func (x *ClassifyFlagsResponse) GetLabels() []string {
	if x != nil {
		return x.Labels
	}
	return nil
}

var File_clearance_v1_clearance_proto protoreflect.FileDescriptor

const file_clearance_v1_clearance_proto_rawDesc = "" +
	"\n" +
	"\x1cclearance/v1/clearance.proto\x12\fclearance.v1\"\xa1\x01\n" +
	"\aFaculty\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12\x1e\n" +
	"\n" +
	"department\x18\x04 \x01(\tR\n" +
	"department\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"\xdb\x01\n" +
	"\fClearanceSet\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"faculty_id\x18\x02 \x01(\tR\tfacultyId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12#\n" +
	"\racademic_year\x18\x04 \x01(\tR\facademicYear\x12%\n" +
	"\x0erequired_types\x18\x05 \x03(\tR\rrequiredTypes\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\a \x01(\tR\tupdatedAt\"\xc3\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12(\n" +
	"\x10clearance_set_id\x18\x02 \x01(\tR\x0eclearanceSetId\x12%\n" +
	"\x0eclearance_type\x18\x03 \x01(\tR\rclearanceType\x12\x1f\n" +
	"\vsource_path\x18\x04 \x01(\tR\n" +
	"sourcePath\x12\x1b\n" +
	"\tfile_name\x18\x05 \x01(\tR\bfileName\x12)\n" +
	"\x10clearance_status\x18\x06 \x01(\tR\x0fclearanceStatus\x12)\n" +
	"\x10predicted_status\x18\a \x01(\tR\x0fpredictedStatus\x12!\n" +
	"\fpredicted_at\x18\b \x01(\tR\vpredictedAt\x12\x1f\n" +
	"\vuploaded_at\x18\t \x01(\tR\n" +
	"uploadedAt\"`\n" +
	"\x14CreateFacultyRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12\x1e\n" +
	"\n" +
	"department\x18\x03 \x01(\tR\n" +
	"department\"H\n" +
	"\x15CreateFacultyResponse\x12/\n" +
	"\afaculty\x18\x01 \x01(\v2\x15.clearance.v1.FacultyR\afaculty\"\x9a\x01\n" +
	"\x19CreateClearanceSetRequest\x12\x1d\n" +
	"\n" +
	"faculty_id\x18\x01 \x01(\tR\tfacultyId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12#\n" +
	"\racademic_year\x18\x03 \x01(\tR\facademicYear\x12%\n" +
	"\x0erequired_types\x18\x04 \x03(\tR\rrequiredTypes\"]\n" +
	"\x1aCreateClearanceSetResponse\x12?\n" +
	"\rclearance_set\x18\x01 \x01(\v2\x1a.clearance.v1.ClearanceSetR\fclearanceSet\"|\n" +
	"\x15UploadDocumentRequest\x12(\n" +
	"\x10clearance_set_id\x18\x01 \x01(\tR\x0eclearanceSetId\x12%\n" +
	"\x0eclearance_type\x18\x02 \x01(\tR\rclearanceType\x12\x12\n" +
	"\x04path\x18\x03 \x01(\tR\x04path\"\xd3\x01\n" +
	"\x16UploadDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.clearance.v1.DocumentR\bdocument\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x127\n" +
	"\aoutcome\x18\x04 \x01(\v2\x1d.clearance.v1.DocumentOutcomeR\aoutcome\"}\n" +
	"\x16UploadDirectoryRequest\x12(\n" +
	"\x10clearance_set_id\x18\x01 \x01(\tR\x0eclearanceSetId\x12%\n" +
	"\x0eclearance_type\x18\x02 \x01(\tR\rclearanceType\x12\x12\n" +
	"\x04root\x18\x03 \x01(\tR\x04root\"\x80\x01\n" +
	"\x17UploadDirectoryResponse\x127\n" +
	"\aresults\x18\x01 \x03(\v2\x1d.clearance.v1.IngestionResultR\aresults\x12,\n" +
	"\x05stats\x18\x02 \x01(\v2\x16.clearance.v1.DirStatsR\x05stats\"\xb7\x01\n" +
	"\x0fIngestionResult\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\vsource_path\x18\x02 \x01(\tR\n" +
	"sourcePath\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\bR\fdeduplicated\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error\"\x98\x01\n" +
	"\bDirStats\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\x05R\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\x05R\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\x05R\tsucceeded\x12\x16\n" +
	"\x06failed\x18\x04 \x01(\x05R\x06failed\x12\"\n" +
	"\fdeduplicated\x18\x05 \x01(\x05R\fdeduplicated\"\xc3\x01\n" +
	"\x0fDocumentOutcome\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12)\n" +
	"\x10predicted_status\x18\x02 \x01(\tR\x0fpredictedStatus\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\x12\x16\n" +
	"\x06method\x18\x04 \x01(\tR\x06method\x12\x1a\n" +
	"\bwarnings\x18\x05 \x03(\tR\bwarnings\x12\x14\n" +
	"\x05error\x18\x06 \x01(\tR\x05error\"@\n" +
	"\x14ListDocumentsRequest\x12(\n" +
	"\x10clearance_set_id\x18\x01 \x01(\tR\x0eclearanceSetId\"M\n" +
	"\x15ListDocumentsResponse\x124\n" +
	"\tdocuments\x18\x01 \x03(\v2\x16.clearance.v1.DocumentR\tdocuments\"=\n" +
	"\x11PredictSetRequest\x12(\n" +
	"\x10clearance_set_id\x18\x01 \x01(\tR\x0eclearanceSetId\"\x89\x01\n" +
	"\x12PredictSetResponse\x129\n" +
	"\boutcomes\x18\x01 \x03(\v2\x1d.clearance.v1.DocumentOutcomeR\boutcomes\x128\n" +
	"\n" +
	"evaluation\x18\x02 \x01(\v2\x18.clearance.v1.EvaluationR\n" +
	"evaluation\">\n" +
	"\x12EvaluateSetRequest\x12(\n" +
	"\x10clearance_set_id\x18\x01 \x01(\tR\x0eclearanceSetId\"O\n" +
	"\x13EvaluateSetResponse\x128\n" +
	"\n" +
	"evaluation\x18\x01 \x01(\v2\x18.clearance.v1.EvaluationR\n" +
	"evaluation\"M\n" +
	"\n" +
	"Evaluation\x12#\n" +
	"\rmissing_types\x18\x01 \x03(\tR\fmissingTypes\x12\x1a\n" +
	"\bcomplete\x18\x02 \x01(\bR\bcomplete\"B\n" +
	"\x16ExportSetReportRequest\x12(\n" +
	"\x10clearance_set_id\x18\x01 \x01(\tR\x0eclearanceSetId\"-\n" +
	"\x17ExportSetReportResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\xf5\x01\n" +
	"\x14ClassifyFlagsRequest\x12'\n" +
	"\x0fadmin_clearance\x18\x01 \x01(\bR\x0eadminClearance\x12-\n" +
	"\x12research_clearance\x18\x02 \x01(\bR\x11researchClearance\x12)\n" +
	"\x10grade_submission\x18\x03 \x01(\bR\x0fgradeSubmission\x12+\n" +
	"\x11library_clearance\x18\x04 \x01(\bR\x10libraryClearance\x12-\n" +
	"\x12equipment_returned\x18\x05 \x01(\bR\x11equipmentReturned\"/\n" +
	"\x15ClassifyFlagsResponse\x12\x16\n" +
	"\x06labels\x18\x01 \x03(\tR\x06labels2\xf1\x05\n" +
	"\x10ClearanceService\x12X\n" +
	"\rCreateFaculty\x12\".clearance.v1.CreateFacultyRequest\x1a#.clearance.v1.CreateFacultyResponse\x12g\n" +
	"\x12CreateClearanceSet\x12'.clearance.v1.CreateClearanceSetRequest\x1a(.clearance.v1.CreateClearanceSetResponse\x12[\n" +
	"\x0eUploadDocument\x12#.clearance.v1.UploadDocumentRequest\x1a$.clearance.v1.UploadDocumentResponse\x12^\n" +
	"\x0fUploadDirectory\x12$.clearance.v1.UploadDirectoryRequest\x1a%.clearance.v1.UploadDirectoryResponse\x12X\n" +
	"\rListDocuments\x12\".clearance.v1.ListDocumentsRequest\x1a#.clearance.v1.ListDocumentsResponse\x12O\n" +
	"\n" +
	"PredictSet\x12\x1f.clearance.v1.PredictSetRequest\x1a .clearance.v1.PredictSetResponse\x12R\n" +
	"\vEvaluateSet\x12 .clearance.v1.EvaluateSetRequest\x1a!.clearance.v1.EvaluateSetResponse\x12^\n" +
	"\x0fExportSetReport\x12$.clearance.v1.ExportSetReportRequest\x1a%.clearance.v1.ExportSetReportResponse2k\n" +
	"\x0fClassifyService\x12X\n" +
	"\rClassifyFlags\x12\".clearance.v1.ClassifyFlagsRequest\x1a#.clearance.v1.ClassifyFlagsResponseBHZFgithub.com/rtanga/clearance-tracker/gen/proto/clearance/v1;clearancev1b\x06proto3"

var (
	file_clearance_v1_clearance_proto_rawDescOnce sync.Once
	file_clearance_v1_clearance_proto_rawDescData []byte
)

func file_clearance_v1_clearance_proto_rawDescGZIP() []byte {
	file_clearance_v1_clearance_proto_rawDescOnce.Do(func() {
		file_clearance_v1_clearance_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_clearance_v1_clearance_proto_rawDesc), len(file_clearance_v1_clearance_proto_rawDesc)))
	})
	return file_clearance_v1_clearance_proto_rawDescData
}

var file_clearance_v1_clearance_proto_msgTypes = make([]protoimpl.MessageInfo, 25)
var file_clearance_v1_clearance_proto_goTypes = []any{
	(*Faculty)(nil),                    // 0: clearance.v1.Faculty
	(*ClearanceSet)(nil),               // 1: clearance.v1.ClearanceSet
	(*Document)(nil),                   // 2: clearance.v1.Document
	(*CreateFacultyRequest)(nil),       // 3: clearance.v1.CreateFacultyRequest
	(*CreateFacultyResponse)(nil),      // 4: clearance.v1.CreateFacultyResponse
	(*CreateClearanceSetRequest)(nil),  // 5: clearance.v1.CreateClearanceSetRequest
	(*CreateClearanceSetResponse)(nil), // 6: clearance.v1.CreateClearanceSetResponse
	(*UploadDocumentRequest)(nil),      // 7: clearance.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),     // 8: clearance.v1.UploadDocumentResponse
	(*UploadDirectoryRequest)(nil),     // 9: clearance.v1.UploadDirectoryRequest
	(*UploadDirectoryResponse)(nil),    // 10: clearance.v1.UploadDirectoryResponse
	(*IngestionResult)(nil),            // 11: clearance.v1.IngestionResult
	(*DirStats)(nil),                   // 12: clearance.v1.DirStats
	(*DocumentOutcome)(nil),            // 13: clearance.v1.DocumentOutcome
	(*ListDocumentsRequest)(nil),       // 14: clearance.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),      // 15: clearance.v1.ListDocumentsResponse
	(*PredictSetRequest)(nil),          // 16: clearance.v1.PredictSetRequest
	(*PredictSetResponse)(nil),         // 17: clearance.v1.PredictSetResponse
	(*EvaluateSetRequest)(nil),         // 18: clearance.v1.EvaluateSetRequest
	(*EvaluateSetResponse)(nil),        // 19: clearance.v1.EvaluateSetResponse
	(*Evaluation)(nil),                 // 20: clearance.v1.Evaluation
	(*ExportSetReportRequest)(nil),     // 21: clearance.v1.ExportSetReportRequest
	(*ExportSetReportResponse)(nil),    // 22: clearance.v1.ExportSetReportResponse
	(*ClassifyFlagsRequest)(nil),       // 23: clearance.v1.ClassifyFlagsRequest
	(*ClassifyFlagsResponse)(nil),      // 24: clearance.v1.ClassifyFlagsResponse
}
var file_clearance_v1_clearance_proto_depIdxs = []int32{
	0,  // 0: clearance.v1.CreateFacultyResponse.faculty:type_name -> clearance.v1.Faculty
	1,  // 1: clearance.v1.CreateClearanceSetResponse.clearance_set:type_name -> clearance.v1.ClearanceSet
	2,  // 2: clearance.v1.UploadDocumentResponse.document:type_name -> clearance.v1.Document
	13, // 3: clearance.v1.UploadDocumentResponse.outcome:type_name -> clearance.v1.DocumentOutcome
	11, // 4: clearance.v1.UploadDirectoryResponse.results:type_name -> clearance.v1.IngestionResult
	12, // 5: clearance.v1.UploadDirectoryResponse.stats:type_name -> clearance.v1.DirStats
	2,  // 6: clearance.v1.ListDocumentsResponse.documents:type_name -> clearance.v1.Document
	13, // 7: clearance.v1.PredictSetResponse.outcomes:type_name -> clearance.v1.DocumentOutcome
	20, // 8: clearance.v1.PredictSetResponse.evaluation:type_name -> clearance.v1.Evaluation
	20, // 9: clearance.v1.EvaluateSetResponse.evaluation:type_name -> clearance.v1.Evaluation
	3,  // 10: clearance.v1.ClearanceService.CreateFaculty:input_type -> clearance.v1.CreateFacultyRequest
	5,  // 11: clearance.v1.ClearanceService.CreateClearanceSet:input_type -> clearance.v1.CreateClearanceSetRequest
	7,  // 12: clearance.v1.ClearanceService.UploadDocument:input_type -> clearance.v1.UploadDocumentRequest
	9,  // 13: clearance.v1.ClearanceService.UploadDirectory:input_type -> clearance.v1.UploadDirectoryRequest
	14, // 14: clearance.v1.ClearanceService.ListDocuments:input_type -> clearance.v1.ListDocumentsRequest
	16, // 15: clearance.v1.ClearanceService.PredictSet:input_type -> clearance.v1.PredictSetRequest
	18, // 16: clearance.v1.ClearanceService.EvaluateSet:input_type -> clearance.v1.EvaluateSetRequest
	21, // 17: clearance.v1.ClearanceService.ExportSetReport:input_type -> clearance.v1.ExportSetReportRequest
	23, // 18: clearance.v1.ClassifyService.ClassifyFlags:input_type -> clearance.v1.ClassifyFlagsRequest
	4,  // 19: clearance.v1.ClearanceService.CreateFaculty:output_type -> clearance.v1.CreateFacultyResponse
	6,  // 20: clearance.v1.ClearanceService.CreateClearanceSet:output_type -> clearance.v1.CreateClearanceSetResponse
	8,  // 21: clearance.v1.ClearanceService.UploadDocument:output_type -> clearance.v1.UploadDocumentResponse
	10, // 22: clearance.v1.ClearanceService.UploadDirectory:output_type -> clearance.v1.UploadDirectoryResponse
	15, // 23: clearance.v1.ClearanceService.ListDocuments:output_type -> clearance.v1.ListDocumentsResponse
	17, // 24: clearance.v1.ClearanceService.PredictSet:output_type -> clearance.v1.PredictSetResponse
	19, // 25: clearance.v1.ClearanceService.EvaluateSet:output_type -> clearance.v1.EvaluateSetResponse
	22, // 26: clearance.v1.ClearanceService.ExportSetReport:output_type -> clearance.v1.ExportSetReportResponse
	24, // 27: clearance.v1.ClassifyService.ClassifyFlags:output_type -> clearance.v1.ClassifyFlagsResponse
	19, // [19:28] is the sub-list for method output_type
	10, // [10:19] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_clearance_v1_clearance_proto_init() }
func file_clearance_v1_clearance_proto_init() {
	if File_clearance_v1_clearance_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_clearance_v1_clearance_proto_rawDesc), len(file_clearance_v1_clearance_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   25,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_clearance_v1_clearance_proto_goTypes,
		DependencyIndexes: file_clearance_v1_clearance_proto_depIdxs,
		MessageInfos:      file_clearance_v1_clearance_proto_msgTypes,
	}.Build()
	File_clearance_v1_clearance_proto = out.File
	file_clearance_v1_clearance_proto_goTypes = nil
	file_clearance_v1_clearance_proto_depIdxs = nil
}
