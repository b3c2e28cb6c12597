package sqlinline

const QSelectIngredients = `--sql dc618f77-d711-49d2-8a61-07c336ac86a7
select ingredient_id, name, category, calories_per_100g::float8, protein_per_100g::float8, carbs_per_100g::float8,
       fat_per_100g::float8, fiber_per_100g::float8, is_verified, created_at
from ingredients
order by name;
`

const QSelectIngredientByID = `--sql 1498d563-7cf5-4b51-93bf-9cffa81b172c
select ingredient_id, name, category, calories_per_100g::float8, protein_per_100g::float8, carbs_per_100g::float8,
       fat_per_100g::float8, fiber_per_100g::float8, is_verified, created_at
from ingredients
where ingredient_id = $1::bigint;
`

const QSearchIngredientsByName = `--sql 01b8503c-8a86-4af1-90ee-14de4f0f43a0
select ingredient_id, name, category, calories_per_100g::float8, protein_per_100g::float8, carbs_per_100g::float8,
       fat_per_100g::float8, fiber_per_100g::float8, is_verified, created_at
from ingredients
where name ilike '%' || $1::text || '%'
order by name;
`

const QSelectIngredientsByCategory = `--sql 44213cc5-8b70-4fe6-8bea-ac0246f8714c
select ingredient_id, name, category, calories_per_100g::float8, protein_per_100g::float8, carbs_per_100g::float8,
       fat_per_100g::float8, fiber_per_100g::float8, is_verified, created_at
from ingredients
where lower(category) = lower($1::text)
order by name;
`

const QInsertIngredient = `--sql 881e466b-530d-40ef-a0a6-abbb565f6073
insert into ingredients (name, category, calories_per_100g, protein_per_100g, carbs_per_100g, fat_per_100g, fiber_per_100g, is_verified, created_at)
values ($1::text, $2::text, $3::numeric, $4::numeric, $5::numeric, $6::numeric, $7::numeric, $8::bool, now())
returning ingredient_id, created_at;
`

const QDeleteIngredient = `--sql 59067172-4c1d-429e-8355-2b496f8bada1
delete from ingredients where ingredient_id = $1::bigint;
`

const QSelectIngredientByName = `--sql dbab51e7-eac0-4ed1-8b75-ba8195d0fbbf
select ingredient_id, name, category, calories_per_100g::float8, protein_per_100g::float8, carbs_per_100g::float8,
       fat_per_100g::float8, fiber_per_100g::float8, is_verified, created_at
from ingredients
where lower(name) = lower($1::text)
order by ingredient_id
limit 1;
`

const QUpdateIngredient = `--sql bac6533d-4413-443c-834b-0b2dc21d09f2
update ingredients set
    name = $2::text,
    category = $3::text,
    calories_per_100g = $4::numeric,
    protein_per_100g = $5::numeric,
    carbs_per_100g = $6::numeric,
    fat_per_100g = $7::numeric,
    fiber_per_100g = $8::numeric,
    is_verified = $9::bool
where ingredient_id = $1::bigint
returning created_at;
`
