package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"hackhub/internal/errs"
	"hackhub/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// inviteCodeRetries bounds the regeneration loop for the 36^6 code space;
// hitting it means something is badly wrong with the random source.
const inviteCodeRetries = 10

type RegisterRequest struct {
	Name       string `form:"name" binding:"required,max=120"`
	Email      string `form:"email" binding:"required,email,max=120"`
	Phone      string `form:"phone" binding:"required,max=20"`
	College    string `form:"college" binding:"required,max=120"`
	Password   string `form:"password" binding:"required,min=6"`
	TeamChoice string `form:"team_choice"`
	TeamName   string `form:"team_name"`
	InviteCode string `form:"invite_code"`
}

type LoginRequest struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

func (h *Handlers) RegisterPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"flash": h.popFlash(c)})
}

func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		h.setFlash(c, "error", "Please fill in all required fields.")
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	var existing models.User
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		h.setFlash(c, "error", errs.ErrDuplicateEmail.Error())
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	user := models.User{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		College: req.College,
	}
	if err := user.SetPassword(req.Password); err != nil {
		h.setFlash(c, "error", "Registration failed.")
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	var err error
	switch req.TeamChoice {
	case "create":
		err = h.registerWithNewTeam(&user, req.TeamName)
	case "join":
		err = h.registerIntoTeam(&user, req.InviteCode)
	default:
		err = h.db.Create(&user).Error
	}

	switch {
	case errors.Is(err, errs.ErrInvalidInviteCode):
		h.setFlash(c, "error", "Invalid invite code!")
		c.Redirect(http.StatusSeeOther, "/register")
		return
	case errors.Is(err, gorm.ErrDuplicatedKey):
		// Lost a race on the email index to a concurrent registration.
		h.setFlash(c, "error", errs.ErrDuplicateEmail.Error())
		c.Redirect(http.StatusSeeOther, "/login")
		return
	case err != nil:
		slog.Default().Error("registration failed", "email", req.Email, "error", err)
		h.setFlash(c, "error", "Registration failed.")
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	h.setFlash(c, "success", "Registration successful.")
	c.Redirect(http.StatusSeeOther, "/login")
}

// registerWithNewTeam creates the team and its first member as one logical
// registration: either both rows land or neither does. A collision on the
// invite-code index restarts the transaction with a fresh code.
func (h *Handlers) registerWithNewTeam(user *models.User, teamName string) error {
	if teamName == "" {
		teamName = "Team-" + firstNameToken(user.Name)
	}

	for attempt := 0; attempt < inviteCodeRetries; attempt++ {
		code, err := models.NewInviteCode()
		if err != nil {
			return err
		}

		err = h.db.Transaction(func(tx *gorm.DB) error {
			team := models.Team{Name: teamName, InviteCode: code}
			if err := tx.Create(&team).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return errCodeCollision
				}
				return err
			}
			user.TeamID = &team.ID
			if err := tx.Create(user).Error; err != nil {
				return err
			}
			return tx.Model(&team).Update("created_by_id", user.ID).Error
		})
		if !errors.Is(err, errCodeCollision) {
			return err
		}
		// Code collision; roll a new one and try again.
	}
	return errors.New("could not allocate a unique invite code")
}

var errCodeCollision = errors.New("invite code collision")

func (h *Handlers) registerIntoTeam(user *models.User, inviteCode string) error {
	var team models.Team
	if err := h.db.Where("invite_code = ?", inviteCode).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrInvalidInviteCode
		}
		return err
	}
	user.TeamID = &team.ID
	return h.db.Create(user).Error
}

func (h *Handlers) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"flash": h.popFlash(c)})
}

func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.setFlash(c, "error", errs.ErrInvalidCredentials.Error())
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	// Unknown email and wrong password take the same path so the response
	// does not reveal which one failed.
	var user models.User
	err := h.db.Where("email = ?", req.Email).First(&user).Error
	if err != nil || !user.CheckPassword(req.Password) {
		h.setFlash(c, "error", "Invalid credentials!")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	claims := h.sessionClaims(c)
	admin := claims != nil && claims.Admin
	h.issueSession(c, user.ID, admin)

	h.setFlash(c, "success", "Logged in!")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handlers) Logout(c *gin.Context) {
	h.clearSession(c)
	h.setFlash(c, "info", "Logged out.")
	c.Redirect(http.StatusSeeOther, "/")
}

func firstNameToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[0]
}
