package controllers

import (
	"fmt"
	"net/http"

	"github.com/cbaldofetal-collab/nutrigest/services"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	Exams *services.ExamService
	Users *services.UserService
	PDF   services.PDFConverter
}

func NewExamController(es *services.ExamService, us *services.UserService, pdf services.PDFConverter) *ExamController {
	return &ExamController{Exams: es, Users: us, PDF: pdf}
}

func (ec *ExamController) Add(c *gin.Context) {
	var input services.ExamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := ec.Exams.Add(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (ec *ExamController) List(c *gin.Context) {
	entries, err := ec.Exams.List(currentUserID(c), c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (ec *ExamController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	entry, err := ec.Exams.Get(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (ec *ExamController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input services.ExamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := ec.Exams.Update(currentUserID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// PDFDownload renders a printable record of one exam.
func (ec *ExamController) PDFDownload(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	entry, err := ec.Exams.Get(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	user, err := ec.Users.Get(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	html, err := services.RenderExamHTML(entry, user.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	pdf, err := ec.PDF.Convert(html)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("exam-%d-%s.pdf", entry.ID, entry.Date.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (ec *ExamController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ec.Exams.Delete(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
