package router

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/models"
	mock_models "github.com/tamstreatsandsweets/connect-api-examples/internal/models/mocks"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/services"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/utils"
)

var formHeaders = map[string]string{"Content-Type": "application/x-www-form-urlencoded"}

func formBody(values url.Values) io.Reader {
	return strings.NewReader(values.Encode())
}

func orderSummary(withFulfillment, paid bool) *models.OrderSummary {
	order := models.Order{
		ID:         "ORDER_1",
		LocationID: "LOC_1",
		Version:    7,
		TotalMoney: models.Money{Amount: 1550, Currency: "USD"},
	}

	if withFulfillment {
		order.Fulfillments = []models.Fulfillment{{UID: "fulfillment-1", Type: models.FulfillmentTypePickup}}
	}

	if paid {
		order.TenderCount = 1
	}

	return &models.OrderSummary{
		Order:    order,
		Location: models.Location{ID: "LOC_1", Name: "Tams Treats"},
	}
}

type routerMocks struct {
	checkout *mock_models.MockCheckoutService
	payment  *mock_models.MockPaymentService
	loyalty  *mock_models.MockLoyaltyService
	renderer *mock_models.MockRenderer
}

func newTestServer(t *testing.T) (*httptest.Server, routerMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mocks := routerMocks{
		checkout: mock_models.NewMockCheckoutService(ctrl),
		payment:  mock_models.NewMockPaymentService(ctrl),
		loyalty:  mock_models.NewMockLoyaltyService(ctrl),
		renderer: mock_models.NewMockRenderer(ctrl),
	}

	testServer := httptest.NewServer(
		New(Config{ApplicationID: "app-id-1"}, mocks.checkout, mocks.payment, mocks.loyalty, mocks.renderer).get(),
	)
	t.Cleanup(testServer.Close)

	return testServer, mocks
}

func TestChooseDeliveryPickupRoutes(t *testing.T) {
	testCases := []struct {
		testName         string
		methodName       string
		targetURL        string
		body             func() io.Reader
		test             func(t *testing.T, mocks routerMocks)
		expectedCode     int
		expectedMessage  string
		expectedLocation string
	}{
		{
			testName:   "Should render the chooser page",
			methodName: "GET",
			targetURL:  "/checkout/choose-delivery-pickup?order_id=ORDER_1&location_id=LOC_1",
			test: func(t *testing.T, mocks routerMocks) {
				mocks.checkout.EXPECT().GetOrderSummary(gomock.Any(), "ORDER_1", "LOC_1").Return(orderSummary(false, false), nil)
				mocks.renderer.EXPECT().Render(gomock.Any(), "choose-delivery-pickup", gomock.Any()).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			testName:   "Should fail when the order can't be retrieved",
			methodName: "GET",
			targetURL:  "/checkout/choose-delivery-pickup?order_id=ORDER_1&location_id=LOC_1",
			test: func(t *testing.T, mocks routerMocks) {
				mocks.checkout.EXPECT().GetOrderSummary(gomock.Any(), "ORDER_1", "LOC_1").Return(nil, errors.New("api unavailable"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Error occurred during getting order: api unavailable\n",
		},
		{
			testName:   "Should redirect a pickup choice to the pickup form",
			methodName: "POST",
			targetURL:  "/checkout/choose-delivery-pickup",
			body: func() io.Reader {
				return formBody(url.Values{
					"order_id":         {"ORDER_1"},
					"location_id":      {"LOC_1"},
					"fulfillment_type": {"PICKUP"},
				})
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "/checkout/add-pickup-details?location_id=LOC_1&order_id=ORDER_1",
		},
		{
			testName:   "Should redirect a delivery choice to the delivery form",
			methodName: "POST",
			targetURL:  "/checkout/choose-delivery-pickup",
			body: func() io.Reader {
				return formBody(url.Values{
					"order_id":         {"ORDER_1"},
					"location_id":      {"LOC_1"},
					"fulfillment_type": {"SHIPMENT"},
				})
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "/checkout/add-delivery-details?location_id=LOC_1&order_id=ORDER_1",
		},
		{
			testName:   "Should reject an unknown fulfillment type",
			methodName: "POST",
			targetURL:  "/checkout/choose-delivery-pickup",
			body: func() io.Reader {
				return formBody(url.Values{
					"order_id":         {"ORDER_1"},
					"location_id":      {"LOC_1"},
					"fulfillment_type": {"DRONE"},
				})
			},
			expectedCode:    http.StatusUnprocessableEntity,
			expectedMessage: "Fulfillment type is invalid\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			testServer, mocks := newTestServer(t)

			var body io.Reader
			headers := map[string]string{}

			if tc.body != nil {
				body = tc.body()
				headers = formHeaders
			}

			if tc.test != nil {
				tc.test(t, mocks)
			}

			res, mes := utils.TestRequest(t, testServer, tc.methodName, tc.targetURL, headers, body)
			res.Body.Close()

			assert.Equal(t, tc.expectedCode, res.StatusCode)
			assert.Equal(t, tc.expectedMessage, mes)

			if tc.expectedLocation != "" {
				assert.Equal(t, tc.expectedLocation, res.Header.Get("Location"))
			}
		})
	}
}

func TestSubmitPickupDetailsRoute(t *testing.T) {
	testServer, mocks := newTestServer(t)

	expectedDetails := models.PickupDetails{
		Recipient: models.Recipient{
			DisplayName: "Amelia Earhart",
			PhoneNumber: "4155550100",
			Email:       "amelia@example.com",
		},
		PickupAt: "2024-06-01T13:00:00Z",
	}

	mocks.checkout.EXPECT().ApplyPickupDetails(gomock.Any(), "ORDER_1", "LOC_1", expectedDetails).Return(nil)

	body := formBody(url.Values{
		"order_id":      {"ORDER_1"},
		"location_id":   {"LOC_1"},
		"pickup_name":   {"Amelia Earhart"},
		"pickup_email":  {"amelia@example.com"},
		"pickup_number": {"4155550100"},
		"pickup_time":   {"2024-06-01T13:00:00Z"},
	})

	res, _ := utils.TestRequest(t, testServer, "POST", "/checkout/add-pickup-details", formHeaders, body)
	res.Body.Close()

	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/checkout/payment?location_id=LOC_1&order_id=ORDER_1", res.Header.Get("Location"))
}

func TestSubmitDeliveryDetailsRoute(t *testing.T) {
	testServer, mocks := newTestServer(t)

	expectedDetails := models.DeliveryDetails{
		Recipient: models.Recipient{
			DisplayName: "Bessie Coleman",
			PhoneNumber: "4155550101",
			Email:       "bessie@example.com",
		},
		Address: models.Address{
			Line1:      "1455 Market Street",
			Locality:   "San Francisco",
			District:   "CA",
			PostalCode: "94103",
		},
		ExpectedShippedAt: "2024-06-02T13:00:00Z",
	}

	mocks.checkout.EXPECT().ApplyDeliveryDetails(gomock.Any(), "ORDER_1", "LOC_1", expectedDetails).Return(nil)

	body := formBody(url.Values{
		"order_id":         {"ORDER_1"},
		"location_id":      {"LOC_1"},
		"delivery_name":    {"Bessie Coleman"},
		"delivery_email":   {"bessie@example.com"},
		"delivery_number":  {"4155550101"},
		"delivery_address": {"1455 Market Street"},
		"delivery_city":    {"San Francisco"},
		"delivery_state":   {"CA"},
		"delivery_postal":  {"94103"},
		"delivery_time":    {"2024-06-02T13:00:00Z"},
	})

	res, _ := utils.TestRequest(t, testServer, "POST", "/checkout/add-delivery-details", formHeaders, body)
	res.Body.Close()

	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/checkout/payment?location_id=LOC_1&order_id=ORDER_1", res.Header.Get("Location"))
}

func TestPaymentPageRoute(t *testing.T) {
	t.Run("Should fall back to the chooser when the order has no fulfillment", func(t *testing.T) {
		testServer, mocks := newTestServer(t)

		mocks.checkout.EXPECT().GetOrderSummary(gomock.Any(), "ORDER_1", "LOC_1").Return(orderSummary(false, false), nil)

		res, _ := utils.TestRequest(t, testServer, "GET", "/checkout/payment?order_id=ORDER_1&location_id=LOC_1", nil, nil)
		res.Body.Close()

		assert.Equal(t, http.StatusFound, res.StatusCode)
		assert.Equal(t, "/checkout/choose-delivery-pickup?location_id=LOC_1&order_id=ORDER_1", res.Header.Get("Location"))
	})

	t.Run("Should render the payment page with the loyalty state", func(t *testing.T) {
		testServer, mocks := newTestServer(t)

		mocks.checkout.EXPECT().GetOrderSummary(gomock.Any(), "ORDER_1", "LOC_1").Return(orderSummary(true, false), nil)
		mocks.loyalty.EXPECT().ProgramOverview(gomock.Any(), "ACC_1", false).Return(models.LoyaltyInfo{ProgramActive: true, AccountID: "ACC_1"}, nil)
		mocks.renderer.EXPECT().Render(gomock.Any(), "payment", gomock.Any()).Return(nil)

		res, _ := utils.TestRequest(t, testServer, "GET", "/checkout/payment?order_id=ORDER_1&location_id=LOC_1&loyalty_account_id=ACC_1", nil, nil)
		res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("Should mark the loyalty pass as redeemed", func(t *testing.T) {
		testServer, mocks := newTestServer(t)

		mocks.checkout.EXPECT().GetOrderSummary(gomock.Any(), "ORDER_1", "LOC_1").Return(orderSummary(true, false), nil)
		mocks.loyalty.EXPECT().ProgramOverview(gomock.Any(), "ACC_1", true).Return(models.LoyaltyInfo{}, nil)
		mocks.renderer.EXPECT().Render(gomock.Any(), "payment", gomock.Any()).Return(nil)

		res, _ := utils.TestRequest(t, testServer, "GET", "/checkout/payment?order_id=ORDER_1&location_id=LOC_1&loyalty_account_id=ACC_1&redeemed=1", nil, nil)
		res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
	})
}

func TestSubmitPaymentRoute(t *testing.T) {
	testCases := []struct {
		testName         string
		body             func() io.Reader
		test             func(t *testing.T, mocks routerMocks)
		expectedCode     int
		expectedMessage  string
		expectedLocation string
	}{
		{
			testName: "Should reject a missing card nonce",
			body: func() io.Reader {
				return formBody(url.Values{"order_id": {"ORDER_1"}, "location_id": {"LOC_1"}})
			},
			expectedCode:    http.StatusUnprocessableEntity,
			expectedMessage: "Card nonce is empty\n",
		},
		{
			testName: "Should charge the order and redirect to confirmation",
			body: func() io.Reader {
				return formBody(url.Values{
					"order_id":    {"ORDER_1"},
					"location_id": {"LOC_1"},
					"nonce":       {"cnon:card-nonce-ok"},
				})
			},
			test: func(t *testing.T, mocks routerMocks) {
				mocks.payment.EXPECT().ChargeOrder(gomock.Any(), "ORDER_1", "LOC_1", "cnon:card-nonce-ok").Return(nil)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "/order-confirmation?location_id=LOC_1&order_id=ORDER_1",
		},
		{
			testName: "Should surface a failed charge",
			body: func() io.Reader {
				return formBody(url.Values{
					"order_id":    {"ORDER_1"},
					"location_id": {"LOC_1"},
					"nonce":       {"cnon:card-nonce-ok"},
				})
			},
			test: func(t *testing.T, mocks routerMocks) {
				mocks.payment.EXPECT().ChargeOrder(gomock.Any(), "ORDER_1", "LOC_1", "cnon:card-nonce-ok").Return(errors.New("card declined"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Error occurred during creating payment: card declined\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			testServer, mocks := newTestServer(t)

			if tc.test != nil {
				tc.test(t, mocks)
			}

			res, mes := utils.TestRequest(t, testServer, "POST", "/checkout/payment", formHeaders, tc.body())
			res.Body.Close()

			assert.Equal(t, tc.expectedCode, res.StatusCode)
			assert.Equal(t, tc.expectedMessage, mes)

			if tc.expectedLocation != "" {
				assert.Equal(t, tc.expectedLocation, res.Header.Get("Location"))
			}
		})
	}
}

func TestAddLoyaltyAccountRoute(t *testing.T) {
	t.Run("Should redirect back to the referrer with the found account", func(t *testing.T) {
		testServer, mocks := newTestServer(t)

		mocks.loyalty.EXPECT().FindAccountByPhone(gomock.Any(), "4155550100").Return("ACC_1", nil)

		headers := map[string]string{
			"Content-Type": "application/x-www-form-urlencoded",
			"Referer":      testServer.URL + "/checkout/payment?order_id=ORDER_1&location_id=LOC_1",
		}

		body := formBody(url.Values{
			"order_id":     {"ORDER_1"},
			"location_id":  {"LOC_1"},
			"phone_number": {"4155550100"},
		})

		res, _ := utils.TestRequest(t, testServer, "POST", "/checkout/add-loyalty-account", headers, body)
		res.Body.Close()

		assert.Equal(t, http.StatusFound, res.StatusCode)
		assert.Equal(t, "/checkout/payment?location_id=LOC_1&loyalty_account_id=ACC_1&order_id=ORDER_1", res.Header.Get("Location"))
	})

	t.Run("Should omit the account id when no account matches", func(t *testing.T) {
		testServer, mocks := newTestServer(t)

		mocks.loyalty.EXPECT().FindAccountByPhone(gomock.Any(), "4155550100").Return("", nil)

		body := formBody(url.Values{
			"order_id":     {"ORDER_1"},
			"location_id":  {"LOC_1"},
			"phone_number": {"4155550100"},
		})

		res, _ := utils.TestRequest(t, testServer, "POST", "/checkout/add-loyalty-account", formHeaders, body)
		res.Body.Close()

		assert.Equal(t, http.StatusFound, res.StatusCode)
		assert.Equal(t, "/checkout/payment?location_id=LOC_1&order_id=ORDER_1", res.Header.Get("Location"))
	})

	t.Run("Should reject an empty phone number", func(t *testing.T) {
		testServer, _ := newTestServer(t)

		body := formBody(url.Values{"order_id": {"ORDER_1"}, "location_id": {"LOC_1"}})

		res, mes := utils.TestRequest(t, testServer, "POST", "/checkout/add-loyalty-account", formHeaders, body)
		res.Body.Close()

		assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
		assert.Equal(t, "Phone number is empty\n", mes)
	})
}

func TestRedeemLoyaltyRewardRoute(t *testing.T) {
	t.Run("Should create the reward and mark the pass as redeemed", func(t *testing.T) {
		testServer, mocks := newTestServer(t)

		mocks.loyalty.EXPECT().RedeemReward(gomock.Any(), "ORDER_1", "ACC_1", "TIER_A").Return(nil)

		body := formBody(url.Values{
			"order_id":           {"ORDER_1"},
			"location_id":        {"LOC_1"},
			"loyalty_account_id": {"ACC_1"},
			"reward_tier_id":     {"TIER_A"},
		})

		res, _ := utils.TestRequest(t, testServer, "POST", "/checkout/redeem-loyalty-reward", formHeaders, body)
		res.Body.Close()

		assert.Equal(t, http.StatusFound, res.StatusCode)
		assert.Equal(
			t,
			"/checkout/payment?location_id=LOC_1&loyalty_account_id=ACC_1&order_id=ORDER_1&redeemed=1",
			res.Header.Get("Location"),
		)
	})

	t.Run("Should reject a missing reward tier id", func(t *testing.T) {
		testServer, _ := newTestServer(t)

		body := formBody(url.Values{
			"order_id":           {"ORDER_1"},
			"location_id":        {"LOC_1"},
			"loyalty_account_id": {"ACC_1"},
		})

		res, mes := utils.TestRequest(t, testServer, "POST", "/checkout/redeem-loyalty-reward", formHeaders, body)
		res.Body.Close()

		assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
		assert.Equal(t, "Loyalty account id or reward tier id is empty\n", mes)
	})
}

func TestOrderConfirmationRoute(t *testing.T) {
	t.Run("Should fail for an unpaid order instead of redirecting", func(t *testing.T) {
		testServer, mocks := newTestServer(t)

		mocks.checkout.EXPECT().ConfirmOrder(gomock.Any(), "ORDER_1", "LOC_1").Return(nil, services.ErrOrderNotPaid)

		res, mes := utils.TestRequest(t, testServer, "GET", "/order-confirmation?order_id=ORDER_1&location_id=LOC_1", nil, nil)
		res.Body.Close()

		assert.Equal(t, http.StatusConflict, res.StatusCode)
		assert.Equal(t, "Order is not paid\n", mes)
		assert.Empty(t, res.Header.Get("Location"))
	})

	t.Run("Should render a paid order", func(t *testing.T) {
		testServer, mocks := newTestServer(t)

		mocks.checkout.EXPECT().ConfirmOrder(gomock.Any(), "ORDER_1", "LOC_1").Return(orderSummary(true, true), nil)
		mocks.renderer.EXPECT().Render(gomock.Any(), "order-confirmation", gomock.Any()).Return(nil)

		res, _ := utils.TestRequest(t, testServer, "GET", "/order-confirmation?order_id=ORDER_1&location_id=LOC_1", nil, nil)
		res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
	})
}

func TestAddLoyaltyPointRoute(t *testing.T) {
	t.Run("Should accumulate points and redirect back to confirmation", func(t *testing.T) {
		testServer, mocks := newTestServer(t)

		mocks.loyalty.EXPECT().AccumulatePoints(gomock.Any(), "ORDER_1", "LOC_1", "4155550100").Return(nil)

		body := formBody(url.Values{
			"order_id":     {"ORDER_1"},
			"location_id":  {"LOC_1"},
			"phone_number": {"4155550100"},
		})

		res, _ := utils.TestRequest(t, testServer, "POST", "/order-confirmation/add-loyalty-point", formHeaders, body)
		res.Body.Close()

		assert.Equal(t, http.StatusFound, res.StatusCode)
		assert.Equal(t, "/order-confirmation?location_id=LOC_1&order_id=ORDER_1", res.Header.Get("Location"))
	})

	t.Run("Should fail when no loyalty program is configured", func(t *testing.T) {
		testServer, mocks := newTestServer(t)

		mocks.loyalty.EXPECT().AccumulatePoints(gomock.Any(), "ORDER_1", "LOC_1", "4155550100").Return(services.ErrNoLoyaltyProgram)

		body := formBody(url.Values{
			"order_id":     {"ORDER_1"},
			"location_id":  {"LOC_1"},
			"phone_number": {"4155550100"},
		})

		res, mes := utils.TestRequest(t, testServer, "POST", "/order-confirmation/add-loyalty-point", formHeaders, body)
		res.Body.Close()

		assert.Equal(t, http.StatusConflict, res.StatusCode)
		assert.Equal(t, "Loyalty program is not configured\n", mes)
	})

	t.Run("Should reject an empty phone number", func(t *testing.T) {
		testServer, _ := newTestServer(t)

		body := formBody(url.Values{"order_id": {"ORDER_1"}, "location_id": {"LOC_1"}})

		res, mes := utils.TestRequest(t, testServer, "POST", "/order-confirmation/add-loyalty-point", formHeaders, body)
		res.Body.Close()

		assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
		assert.Equal(t, "Phone number is empty\n", mes)
	})
}
