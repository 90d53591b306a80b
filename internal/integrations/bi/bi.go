package bi

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/propertysales/collection-service/internal/config"
	"github.com/sirupsen/logrus"
)

// BIClient handles integration with the Bank Indonesia exchange-rate
// webservice
type BIClient struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewBIClient initializes a new Bank Indonesia client
func NewBIClient(cfg *config.Config, log *logrus.Logger) *BIClient {
	return &BIClient{
		url: cfg.BIRateURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// buildSOAPRequest creates a SOAP request for the USD local rate
func (c *BIClient) buildSOAPRequest() string {
	return `<?xml version="1.0" encoding="utf-8"?>
		<soap12:Envelope xmlns:soap12="http://www.w3.org/2003/05/soap-envelope">
			<soap12:Body>
				<getSubKursLokal3 xmlns="http://www.bi.go.id/">
					<mts>USD</mts>
					<startdate>` + time.Now().AddDate(0, 0, -7).Format("2006-01-02") + `</startdate>
					<enddate>` + time.Now().Format("2006-01-02") + `</enddate>
				</getSubKursLokal3>
			</soap12:Body>
		</soap12:Envelope>`
}

// sendRequest sends the SOAP request to Bank Indonesia
func (c *BIClient) sendRequest(soapRequest string) ([]byte, error) {
	req, err := http.NewRequest("POST", c.url, bytes.NewBuffer([]byte(soapRequest)))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/soap+xml; charset=utf-8")
	req.Header.Set("SOAPAction", "http://www.bi.go.id/getSubKursLokal3")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	// Log the raw XML response for debugging
	c.log.Debugf("BI XML response: %s", string(body))

	return body, nil
}

// parseXMLResponse extracts the latest buy/sell quotes and returns the
// midpoint
func (c *BIClient) parseXMLResponse(rawBody []byte) (float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return 0, fmt.Errorf("failed to parse XML: %v", err)
	}

	tables := doc.FindElements("//diffgram/NewDataSet/Table")
	if len(tables) == 0 {
		return 0, fmt.Errorf("no rate data found in XML")
	}

	// Rows come newest first
	latest := tables[0]
	sellElement := latest.FindElement("./jual_subkurslokal")
	buyElement := latest.FindElement("./beli_subkurslokal")
	if sellElement == nil || buyElement == nil {
		return 0, fmt.Errorf("rate elements not found in XML")
	}

	sell, err := strconv.ParseFloat(sellElement.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse sell rate: %v", err)
	}
	buy, err := strconv.ParseFloat(buyElement.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse buy rate: %v", err)
	}

	return (sell + buy) / 2, nil
}

// GetReferenceRate retrieves the current USD/IDR reference rate used on
// pricing pages
func (c *BIClient) GetReferenceRate() (float64, error) {
	soapRequest := c.buildSOAPRequest()
	body, err := c.sendRequest(soapRequest)
	if err != nil {
		return 0, err
	}

	rate, err := c.parseXMLResponse(body)
	if err != nil {
		return 0, err
	}

	c.log.Infof("Retrieved BI reference rate: %.2f IDR/USD", rate)
	return rate, nil
}
