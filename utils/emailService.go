package utils

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"smartlearn/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: SmartLearn <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all triggers
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B4332; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B4332; line-height: 1.6; }
			.content h2 { color: #1B4332; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #40916C; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F5EE; padding: 15px; border-radius: 4px; border-left: 4px solid #40916C; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>SMARTLEARN</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 SmartLearn. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to SmartLearn"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>SmartLearn</strong>! We are thrilled to have you onboard.</p>
		<p>Your account has been successfully created. You can now browse subjects, watch video lessons and take examinations.</p>
		<p>If you have any questions, feel free to reach out to your teachers through the in-app messenger.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 2. OTP verification code
func SendOTPEmail(email, otp string) {
	subject := "Your SmartLearn Verification Code"
	body := fmt.Sprintf(`
		<p>Your One Time Password (OTP) is:</p>
		<h1 style="text-align: center; color: #40916C; font-size: 40px; margin: 20px 0;">%s</h1>
		<p>The code is valid for 10 minutes. Do not share it with anyone.</p>
	`, otp)

	go SendEmail([]string{email}, subject, getEmailTemplate("Email Verification", body))
}

// 3. Plan purchase confirmation
func SendSubscriptionEmail(email, name string, plan string, endDate time.Time) {
	subject := "Subscription Confirmed: " + plan + " plan"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your <strong>%s</strong> plan is now active.</p>
		<div class="info-box">
			Access runs until <strong>%s</strong>. Renewing before then keeps your lessons uninterrupted.
		</div>
	`, name, plan, endDate.Format("January 2, 2006"))

	go SendEmail([]string{email}, subject, getEmailTemplate("Subscription Successful", body))
}

// 4. Subscription expiry reminder
func SendSubscriptionExpiryReminder(email, name string, plan string, expiresAt time.Time) {
	subject := "Your SmartLearn Plan is Expiring Soon"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your <strong>%s</strong> plan expires on <strong>%s</strong>.</p>
		<p>Renew before then to keep access to video lessons, live classes and the bookstore.</p>
		<a href="#" class="btn">Renew Now</a>
	`, name, plan, expiresAt.Format("January 2, 2006"))

	go SendEmail([]string{email}, subject, getEmailTemplate("Plan Expiring Soon", body))
}

// 5. Subscription expired
func SendSubscriptionExpiredEmail(email, name string, plan string) {
	subject := "Your SmartLearn Plan Has Expired"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your <strong>%s</strong> plan has expired. Paid content is locked until you renew.</p>
		<a href="#" class="btn">Renew Subscription</a>
	`, name, plan)

	go SendEmail([]string{email}, subject, getEmailTemplate("Plan Expired", body))
}

// 6. Exam result
func SendExamResultEmail(email, name, examTitle string, score, total int) {
	subject := "Your Result: " + examTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You scored <strong>%d / %d</strong> on <strong>%s</strong>.</p>
		<p>Open the app for your per-subject breakdown.</p>
	`, name, score, total, examTitle)

	go SendEmail([]string{email}, subject, getEmailTemplate("Examination Result", body))
}

// 7. Withdrawal confirmation (to the owner)
func SendWithdrawalEmail(email, name string, amount uint, method string) {
	subject := "Withdrawal Recorded"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>A withdrawal of <strong>%d FCFA</strong> via <strong>%s</strong> has been recorded.</p>
		<p>The available balance on your earnings dashboard has been updated.</p>
	`, name, amount, method)

	go SendEmail([]string{email}, subject, getEmailTemplate("Withdrawal Recorded", body))
}

// 8. Book purchase receipt
func SendBookPurchaseEmail(email, name, bookTitle string, amount uint) {
	subject := "Purchase Confirmed: " + bookTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You bought <strong>%s</strong> for <strong>%d FCFA</strong>.</p>
		<p>The book is now available in your library.</p>
	`, name, bookTitle, amount)

	go SendEmail([]string{email}, subject, getEmailTemplate("Purchase Confirmed", body))
}
