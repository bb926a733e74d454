package employee

import "mime/multipart"

// EmployeeFormDTO is the multipart body of the create endpoint; every
// field including the image part is mandatory.
type EmployeeFormDTO struct {
	Name        string                `form:"name" binding:"required"`
	Email       string                `form:"email" binding:"required"`
	MobileNo    string                `form:"mobileNo" binding:"required"`
	Designation string                `form:"designation" binding:"required"`
	Gender      string                `form:"gender" binding:"required"`
	Course      []string              `form:"course" binding:"required"`
	ImgUpload   *multipart.FileHeader `form:"imgUpload" binding:"required"`
}
