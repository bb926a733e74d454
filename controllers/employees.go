package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"staffMan/dto/employee"
	"staffMan/models"
	"staffMan/repositories"
	"staffMan/utils"

	"github.com/gin-gonic/gin"
)

func CreateEmployee(c *gin.Context) {
	var form employee.EmployeeFormDTO

	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	existing, err := repositories.GetEmployeeByEmail(form.Email)
	if err != nil {
		log.Println("Error checking employee email:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Employee already exists"})
		return
	}

	imgPath, err := utils.SaveUploadedImage(c, form.ImgUpload)
	if err != nil {
		log.Println("Error saving uploaded image:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	record := &models.Employee{
		Name:        form.Name,
		Email:       form.Email,
		MobileNo:    form.MobileNo,
		Designation: form.Designation,
		Gender:      form.Gender,
		Course:      form.Course,
		ImgUpload:   imgPath,
		CreateDate:  time.Now(),
	}

	if err := repositories.CreateEmployee(record); err != nil {
		log.Println("Error creating employee:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	c.JSON(http.StatusOK, record)
}

func GetEmployees(c *gin.Context) {
	employees, err := repositories.ListEmployees()
	if err != nil {
		log.Println("Error fetching employees:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	for i := range employees {
		employees[i].ImgUpload = utils.AbsoluteImageURL(c, employees[i].ImgUpload)
	}

	c.JSON(http.StatusOK, employees)
}

func GetEmployeeByID(c *gin.Context) {
	record, err := repositories.GetEmployeeByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Employee not found"})
			return
		}
		log.Println("Error fetching employee:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	record.ImgUpload = utils.AbsoluteImageURL(c, record.ImgUpload)
	c.JSON(http.StatusOK, record)
}

// UpdateEmployee overwrites only the fields a new non-empty value was
// supplied for; the stored image is replaced only when the request
// carries a new file part.
func UpdateEmployee(c *gin.Context) {
	record, err := repositories.GetEmployeeByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Employee not found"})
			return
		}
		log.Println("Error fetching employee:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	if name := c.PostForm("name"); name != "" {
		record.Name = name
	}
	if email := c.PostForm("email"); email != "" {
		record.Email = email
	}
	if mobileNo := c.PostForm("mobileNo"); mobileNo != "" {
		record.MobileNo = mobileNo
	}
	if designation := c.PostForm("designation"); designation != "" {
		record.Designation = designation
	}
	if gender := c.PostForm("gender"); gender != "" {
		record.Gender = gender
	}
	if course := c.PostFormArray("course"); len(course) > 0 {
		record.Course = course
	}

	if file, err := c.FormFile("imgUpload"); err == nil && file != nil {
		imgPath, err := utils.SaveUploadedImage(c, file)
		if err != nil {
			log.Println("Error saving uploaded image:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}
		record.ImgUpload = imgPath
	}

	if err := repositories.UpdateEmployee(record); err != nil {
		log.Println("Error updating employee:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	record.ImgUpload = utils.AbsoluteImageURL(c, record.ImgUpload)
	c.JSON(http.StatusOK, record)
}

func DeleteEmployee(c *gin.Context) {
	if err := repositories.DeleteEmployee(c.Param("id")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Employee not found"})
			return
		}
		log.Println("Error deleting employee:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Employee removed"})
}
