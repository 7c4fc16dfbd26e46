package messageController

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"smartlearn/database"
	"smartlearn/middleware"
	"smartlearn/models"
	messageValidator "smartlearn/validators/message"
)

// SendMessage stores one direct message
func SendMessage(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	reqData, ok := c.Locals("validatedSendMessage").(*messageValidator.SendMessageRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if reqData.RecipientID == userId {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot message yourself!", nil)
	}

	var recipient models.User
	if err := db.Where("id = ? AND is_deleted = false", reqData.RecipientID).First(&recipient).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Recipient not found!", nil)
	}

	message := models.Message{
		SenderID:    userId,
		RecipientID: recipient.ID,
		Body:        reqData.Body,
		SentAt:      time.Now(),
	}

	if err := db.Create(&message).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send message!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message sent!", message)
}

// conversationSummary is one row in the conversation list
type conversationSummary struct {
	PeerID      uint      `json:"peerId"`
	PeerName    string    `json:"peerName"`
	PeerRole    string    `json:"peerRole"`
	LastMessage string    `json:"lastMessage"`
	LastSentAt  time.Time `json:"lastSentAt"`
	UnreadCount int       `json:"unreadCount"`
}

// GetConversations groups the user's messages per peer, newest first
func GetConversations(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	db := database.Database.Db

	var messages []models.Message
	if err := db.
		Where("(sender_id = ? OR recipient_id = ?) AND is_deleted = false", userId, userId).
		Order("sent_at DESC").Find(&messages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch messages!", nil)
	}

	// Messages arrive newest-first, so the first message seen for a peer is
	// the conversation preview.
	order := []uint{}
	byPeer := map[uint]*conversationSummary{}
	for _, m := range messages {
		peerID := m.SenderID
		if peerID == userId {
			peerID = m.RecipientID
		}

		summary, seen := byPeer[peerID]
		if !seen {
			summary = &conversationSummary{
				PeerID:      peerID,
				LastMessage: m.Body,
				LastSentAt:  m.SentAt,
			}
			byPeer[peerID] = summary
			order = append(order, peerID)
		}
		if m.RecipientID == userId && !m.IsRead {
			summary.UnreadCount++
		}
	}

	conversations := make([]conversationSummary, 0, len(order))
	for _, peerID := range order {
		summary := byPeer[peerID]

		var peer models.User
		if err := db.Select("id", "name", "role").Where("id = ?", peerID).First(&peer).Error; err == nil {
			summary.PeerName = peer.Name
			summary.PeerRole = peer.Role
		}

		conversations = append(conversations, *summary)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Conversations fetched!", conversations)
}

// GetThread returns the full message history with one peer and marks the
// peer's messages read
func GetThread(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	peerID, err := c.ParamsInt("peerId")
	if err != nil || peerID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid peer ID!", nil)
	}

	db := database.Database.Db

	var peer models.User
	if err := db.Where("id = ? AND is_deleted = false", peerID).First(&peer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var messages []models.Message
	if err := db.
		Where("((sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)) AND is_deleted = false",
			userId, peerID, peerID, userId).
		Order("sent_at ASC").Find(&messages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch messages!", nil)
	}

	db.Model(&models.Message{}).
		Where("sender_id = ? AND recipient_id = ? AND is_read = false", peerID, userId).
		Update("is_read", true)

	peer.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Conversation fetched!", fiber.Map{
		"peer":     fiber.Map{"id": peer.ID, "name": peer.Name, "role": peer.Role},
		"messages": messages,
	})
}
