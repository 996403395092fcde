package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jobpilot-backend/server/flash"
	"jobpilot-backend/server/middleware"
	"jobpilot-backend/shared/database/models"
)

// OnboardingHandler serves the step pages and persists each submitted
// step as its own record. Steps carry no references to each other or to
// the user; ordering lives entirely in the step table.
type OnboardingHandler struct {
	store   OnboardingStore
	uploads Uploader
}

func NewOnboardingHandler(store OnboardingStore, uploads Uploader) *OnboardingHandler {
	return &OnboardingHandler{store: store, uploads: uploads}
}

// FoundingRequest carries the founding step form fields.
type FoundingRequest struct {
	OrganizationName string `form:"organizationName"`
	IndustryType     string `form:"industryType"`
	Vision           string `form:"vision"`
	Date             string `form:"date"`
	TeamSize         string `form:"teamSize"`
	CompanyWebsite   string `form:"companyWebsite"`
}

// SocialRequest carries the socials step form fields, all optional.
type SocialRequest struct {
	Facebook  string `form:"facebook"`
	Twitter   string `form:"twitter"`
	Instagram string `form:"instagram"`
	Youtube   string `form:"youtube"`
}

// ContactRequest carries the contact step form fields. Required-field
// enforcement happens in the store, not at bind time.
type ContactRequest struct {
	MapLocation string `form:"map_location"`
	PhoneNumber string `form:"phone_number"`
	Email       string `form:"email"`
}

// ShowStep renders one step's form page. Prior records are not loaded for
// prefill; every visit starts from a blank form.
func (h *OnboardingHandler) ShowStep(step Step) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := flash.PageData(c)
		if user, ok := middleware.CurrentUser(c); ok {
			data["User"] = user
		}
		c.HTML(http.StatusOK, step.Template, data)
	}
}

// POST /company
func (h *OnboardingHandler) CreateCompany(c *gin.Context) {
	ctx := c.Request.Context()

	logoHeader, err := c.FormFile("company_logo")
	if err != nil {
		log.Printf("❌ Error saving company: missing company_logo: %v", err)
		c.String(http.StatusInternalServerError, "Error saving company info")
		return
	}

	bannerHeader, err := c.FormFile("banner_image")
	if err != nil {
		log.Printf("❌ Error saving company: missing banner_image: %v", err)
		c.String(http.StatusInternalServerError, "Error saving company info")
		return
	}

	logoURL, err := h.uploads.UploadImage(ctx, logoHeader, "company_logo")
	if err != nil {
		log.Printf("❌ Error uploading company logo: %v", err)
		c.String(http.StatusInternalServerError, "Error saving company info")
		return
	}

	bannerURL, err := h.uploads.UploadImage(ctx, bannerHeader, "banner_image")
	if err != nil {
		log.Printf("❌ Error uploading banner image: %v", err)
		c.String(http.StatusInternalServerError, "Error saving company info")
		return
	}

	company := models.Company{
		CompanyLogo: logoURL,
		BannerImage: bannerURL,
		CompanyName: c.PostForm("company_name"),
		AboutUs:     c.PostForm("about_us"),
	}

	if err := h.store.CreateCompany(ctx, &company); err != nil {
		log.Printf("❌ Error saving company: %v", err)
		c.String(http.StatusInternalServerError, "Error saving company info")
		return
	}

	c.Redirect(http.StatusFound, NextPath("company"))
}

// POST /founding
func (h *OnboardingHandler) CreateFounding(c *gin.Context) {
	var req FoundingRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusInternalServerError, "Error saving founding info")
		return
	}

	founding := models.Founding{
		OrganizationName: req.OrganizationName,
		IndustryType:     req.IndustryType,
		Vision:           req.Vision,
		CompanyWebsite:   req.CompanyWebsite,
	}

	if req.Date != "" {
		if date, err := time.Parse("2006-01-02", req.Date); err == nil {
			founding.Date = &date
		}
	}
	if req.TeamSize != "" {
		if size, err := strconv.Atoi(req.TeamSize); err == nil {
			founding.TeamSize = size
		}
	}

	if err := h.store.CreateFounding(c.Request.Context(), &founding); err != nil {
		log.Printf("❌ Error saving founding: %v", err)
		c.String(http.StatusInternalServerError, "Error saving founding info")
		return
	}

	c.Redirect(http.StatusFound, NextPath("founding"))
}

// POST /socials
func (h *OnboardingHandler) CreateSocial(c *gin.Context) {
	var req SocialRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusInternalServerError, "Error saving socials info")
		return
	}

	social := models.Social{
		Facebook:  req.Facebook,
		Twitter:   req.Twitter,
		Instagram: req.Instagram,
		Youtube:   req.Youtube,
	}

	if err := h.store.CreateSocial(c.Request.Context(), &social); err != nil {
		log.Printf("❌ Error saving socials: %v", err)
		c.String(http.StatusInternalServerError, "Error saving socials info")
		return
	}

	c.Redirect(http.StatusFound, NextPath("socials"))
}

// POST /contact
func (h *OnboardingHandler) CreateContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusInternalServerError, "Error saving contact info")
		return
	}

	contact := models.Contact{
		MapLocation: req.MapLocation,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}

	if err := h.store.CreateContact(c.Request.Context(), &contact); err != nil {
		log.Printf("❌ Error saving contact: %v", err)
		c.String(http.StatusInternalServerError, "Error saving contact info")
		return
	}

	c.Redirect(http.StatusFound, NextPath("contact"))
}
