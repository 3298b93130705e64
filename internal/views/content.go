package views

const aboutAnalysis = `### About This Analysis

This dashboard provides a comprehensive analysis of thyroid cancer risk factors using a dataset of over 200,000 records.
The analysis focuses on:

- **Demographic Impact**: Age, gender, and ethnicity variations
- **Geographic Distribution**: Risk patterns across different countries
- **Medical Indicators**: TSH, T3, T4 levels and their correlation with risk
- **Environmental Factors**: Radiation exposure, iodine deficiency
- **Lifestyle Factors**: Smoking, obesity, diabetes impact

Navigate through the sections using the sidebar to explore different aspects of the analysis.
`

const riskFactorIntro = `This section will analyze various risk factors for thyroid cancer.`

const demographicIntro = `Analysis of thyroid cancer risk across different demographic groups.`

const modelingIntro = `Machine learning model for thyroid cancer risk prediction.`

const keyInsights = `### Main Findings

Based on the thyroid cancer risk analysis, here are the key insights:

1. **Demographic Patterns**: [To be filled based on actual analysis]
2. **Risk Factors**: [To be filled based on actual analysis]
3. **Geographic Trends**: [To be filled based on actual analysis]
4. **Medical Indicators**: [To be filled based on actual analysis]

### Recommendations

- Early screening for high-risk demographics
- Environmental factor monitoring
- Lifestyle modification programs
`

const (
	msgCustomize      = "Please customize this section based on your specific dataset columns."
	msgModelingSoon   = "This section will contain predictive modeling results once the data structure is analyzed."
	msgNoMissing      = "No missing values found!"
	msgChartFailedFmt = "Chart unavailable: %v"
)
